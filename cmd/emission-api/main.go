package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/glen-sharp/emission-calculator-app/internal/api"
	"github.com/glen-sharp/emission-calculator-app/internal/ingest"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/config"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/memory"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/postgres"
)

func main() {
	ctx := context.Background()

	if err := config.Init(); err != nil {
		log.Fatalf("config.Init: %s", err)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevel)); err != nil {
		log.Fatalf("logger.Init: %s", err)
	}

	var (
		recordStore store.Store
		err         error
	)
	if dsn := viper.GetString(constants.ViperDBDSN); dsn != "" {
		recordStore, err = postgres.Connect(ctx, dsn)
		if err != nil {
			logger.Fatal(ctx, "postgres.Connect: "+err.Error())
		}
	} else {
		logger.Warnf(ctx, "no db dsn configured, using in-memory store")
		recordStore = memory.NewStore()
	}

	orchestrator := ingest.NewOrchestrator(recordStore, config.IngestConfig())

	if viper.GetBool(constants.ViperIngestOnStart) {
		summary, err := orchestrator.Run(ctx)
		if err != nil {
			logger.Fatal(ctx, "ingest on start: "+err.Error())
		}
		logger.Infof(ctx, "startup ingestion: %d ingested, %d skipped", summary.TotalIngested, summary.TotalSkipped)
	}

	svc, err := api.NewAPIService(recordStore, orchestrator)
	if err != nil {
		logger.Fatal(ctx, "api.NewAPIService: "+err.Error())
	}

	go svc.Serve(viper.GetString(constants.ViperHTTPAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
