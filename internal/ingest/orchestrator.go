package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/metrics"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
)

// Config carries everything a run needs injected: one ingest directory
// per activity kind plus the unit-normalization settings. Tests point it
// at isolated fixture directories without touching process state.
type Config struct {
	EmissionFactorDir   string
	AirTravelDir        string
	GoodsAndServicesDir string
	ElectricityDir      string

	MilesToKM             float64
	CanonicalDistanceUnit string
}

// Summary is the aggregate outcome of one ingestion run.
type Summary struct {
	RunID         string             `json:"run_id"`
	Started       time.Time          `json:"started"`
	Duration      string             `json:"duration"`
	Kinds         map[Kind]KindStats `json:"kinds"`
	TotalIngested int                `json:"total_ingested"`
	TotalSkipped  int                `json:"total_skipped"`
}

// Orchestrator drives the four ingesters over one store. Factor ingestion
// always completes first: every other ingester resolves its rows against
// the factor table that phase populates. Runs are mutually exclusive; a
// second trigger while one is in flight fails fast instead of interleaving
// writers.
type Orchestrator struct {
	store store.Store
	cfg   Config
	norm  Normalizer

	runMu sync.Mutex
}

func NewOrchestrator(s store.Store, cfg Config) *Orchestrator {
	return &Orchestrator{
		store: s,
		cfg:   cfg,
		norm:  NewNormalizer(cfg.MilesToKM, cfg.CanonicalDistanceUnit),
	}
}

// Run executes a full ingestion pass. Row-level failures are counted in
// the summary; the first fatal error (a required column missing from a
// file) aborts the run, leaving records from already-completed kinds in
// place. There is no rollback.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	if !o.runMu.TryLock() {
		return nil, constants.ErrIngestInProgress
	}
	defer o.runMu.Unlock()

	summary := &Summary{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Kinds:   make(map[Kind]KindStats, 4),
	}

	logger.Infof(ctx, "ingestion run %s started", summary.RunID)

	existing, err := o.store.ListEmissionFactors(ctx)
	if err != nil {
		metrics.RunCompleted("failed")
		return nil, fmt.Errorf("store.ListEmissionFactors: %w", err)
	}

	if err := o.runPhase(ctx, summary, o.cfg.EmissionFactorDir, newFactorIngester(o.store, existing)); err != nil {
		return nil, err
	}

	factors, err := o.store.ListEmissionFactors(ctx)
	if err != nil {
		metrics.RunCompleted("failed")
		return nil, fmt.Errorf("store.ListEmissionFactors: %w", err)
	}
	index := NewFactorIndex(factors)

	phases := []struct {
		dir string
		ing rowIngester
	}{
		{o.cfg.AirTravelDir, &airTravelIngester{store: o.store, norm: o.norm, index: index}},
		{o.cfg.GoodsAndServicesDir, &goodsIngester{store: o.store, index: index}},
		{o.cfg.ElectricityDir, &electricityIngester{store: o.store, index: index}},
	}

	for _, phase := range phases {
		if err := o.runPhase(ctx, summary, phase.dir, phase.ing); err != nil {
			return nil, err
		}
	}

	summary.Duration = time.Since(summary.Started).String()
	metrics.RunCompleted("ok")
	logger.Infof(ctx, "ingestion run %s done: %d ingested, %d skipped in %s",
		summary.RunID, summary.TotalIngested, summary.TotalSkipped, summary.Duration)

	return summary, nil
}

func (o *Orchestrator) runPhase(ctx context.Context, summary *Summary, dir string, ing rowIngester) error {
	stats, err := runKind(ctx, dir, ing)
	summary.Kinds[ing.Kind()] = stats
	summary.TotalIngested += stats.Ingested
	summary.TotalSkipped += stats.Skipped
	if err != nil {
		metrics.RunCompleted("failed")
		logger.Errorf(ctx, "ingestion run %s aborted on %s: %s", summary.RunID, ing.Kind(), err.Error())
		return fmt.Errorf("ingest %s: %w", ing.Kind(), err)
	}
	return nil
}
