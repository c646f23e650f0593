package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/metrics"
)

// Kind names one of the four record collections fed by ingestion.
type Kind string

const (
	KindEmissionFactor            Kind = "emission_factors"
	KindAirTravel                 Kind = "air_travel"
	KindPurchasedGoodsAndServices Kind = "purchased_goods_and_services"
	KindElectricity               Kind = "electricity"
)

// rowIngester is one activity kind's slice of the pipeline: the required
// column set and the parse → lookup → compute → persist step for a single
// row. IngestRow returns a *RowError for failures that only invalidate
// the row; any other error is fatal for the run.
type rowIngester interface {
	Kind() Kind
	Columns() []string
	IngestRow(ctx context.Context, row Row) error
}

// KindStats accumulates per-kind outcomes of an ingestion run.
type KindStats struct {
	Files    int `json:"files"`
	Ingested int `json:"ingested"`
	Skipped  int `json:"skipped"`
}

// runKind ingests every *.csv file in dir through ing. Missing
// directories and empty files complete normally with zero records. A
// header missing a required column aborts with a ColumnValidationError;
// row-level failures are logged, counted and skipped.
func runKind(ctx context.Context, dir string, ing rowIngester) (KindStats, error) {
	var stats KindStats

	files, err := listCSVFiles(dir)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, path := range files {
		stats.Files++
		if err := ingestFile(ctx, path, ing, &stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func ingestFile(ctx context.Context, path string, ing rowIngester, stats *KindStats) error {
	file, err := openCSVFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if file.reader == nil {
		// Headerless empty file: nothing to ingest.
		return nil
	}

	if err := file.requireColumns(ing.Columns()); err != nil {
		return err
	}

	for {
		row, err := file.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if skip(ctx, ing.Kind(), err, stats) {
				continue
			}
			return err
		}

		if err := ing.IngestRow(ctx, row); err != nil {
			if skip(ctx, ing.Kind(), err, stats) {
				continue
			}
			return fmt.Errorf("ingest row, file-%s line-%d: %w", row.File, row.Line, err)
		}
		stats.Ingested++
		metrics.RowIngested(string(ing.Kind()))
	}
}

// skip records err as a row-level skip when it is one, and reports
// whether ingestion should continue.
func skip(ctx context.Context, kind Kind, err error, stats *KindStats) bool {
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		return false
	}

	stats.Skipped++
	metrics.RowSkipped(string(kind), string(rowErr.Kind))
	logger.Warnf(ctx, "skipping row: %s", rowErr.Error())
	return true
}
