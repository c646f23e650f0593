// Package emissions is the read side: it unions the persisted activity
// records into one ordered sequence and computes per-kind and grand
// totals. It never re-joins against the factor table; co2e, scope and
// category were denormalized into each record at ingest time.
package emissions

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Summary builds the full read payload. An empty store yields zero totals
// and an empty array, never an error.
func (s *Service) Summary(ctx context.Context) (*domain.EmissionsSummary, error) {
	var (
		airTravel   []*domain.AirTravel
		goods       []*domain.PurchasedGoodsAndServices
		electricity []*domain.Electricity
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		airTravel, err = s.store.ListAirTravel(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		goods, err = s.store.ListPurchasedGoodsAndServices(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		electricity, err = s.store.ListElectricity(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]domain.EmissionRecord, 0, len(airTravel)+len(goods)+len(electricity))

	airTotal := decimal.Zero
	for _, r := range airTravel {
		records = append(records, domain.EmissionRecord{CO2e: r.CO2e, Scope: r.Scope, Category: r.Category, Activity: r.Activity})
		airTotal = airTotal.Add(decimal.NewFromFloat(r.CO2e))
	}

	goodsTotal := decimal.Zero
	for _, r := range goods {
		records = append(records, domain.EmissionRecord{CO2e: r.CO2e, Scope: r.Scope, Category: r.Category, Activity: r.Activity})
		goodsTotal = goodsTotal.Add(decimal.NewFromFloat(r.CO2e))
	}

	electricityTotal := decimal.Zero
	for _, r := range electricity {
		records = append(records, domain.EmissionRecord{CO2e: r.CO2e, Scope: r.Scope, Category: r.Category, Activity: r.Activity})
		electricityTotal = electricityTotal.Add(decimal.NewFromFloat(r.CO2e))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CO2e > records[j].CO2e
	})

	return &domain.EmissionsSummary{
		EmissionsArray:                     records,
		TotalAirTravelCO2e:                 airTotal.InexactFloat64(),
		TotalPurchasedGoodsAndServicesCO2e: goodsTotal.InexactFloat64(),
		TotalElectricityCO2e:               electricityTotal.InexactFloat64(),
		TotalCO2e:                          airTotal.Add(goodsTotal).Add(electricityTotal).InexactFloat64(),
	}, nil
}
