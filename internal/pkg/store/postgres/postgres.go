// Package postgres implements the record store on top of pgx/v5 and
// squirrel. The schema is applied on connect; all statements are plain
// CREATE TABLE IF NOT EXISTS, so reconnecting is harmless.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/xpgx"
)

//go:embed schema.sql
var schema string

const (
	tableEmissionFactors           = "emission_factors"
	tableAirTravel                 = "air_travel"
	tablePurchasedGoodsAndServices = "purchased_goods_and_services"
	tableElectricity               = "electricity"
	tableUsers                     = "users"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

type pgStore struct {
	pool xpgx.Pool
}

// Connect dials postgres, retrying with exponential backoff so the API can
// start before the database is ready, and applies the schema.
func Connect(ctx context.Context, dsn string) (store.Store, error) {
	var pool *pgxpool.Pool

	dial := func() error {
		p, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			logger.Warnf(ctx, "postgres not ready: %s", err.Error())
			return err
		}
		pool = p
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(dial, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &pgStore{pool: xpgx.NewPool(pool)}, nil
}
