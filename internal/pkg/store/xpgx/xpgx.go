// Package xpgx bridges squirrel query builders and pgx/v5, scanning rows
// into db-tagged structs.
package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

func NewPool(pool *pgxpool.Pool) Pool {
	return Pool{Pool: pool}
}

// Getx runs the query and scans exactly one row into T.
func Getx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	selected, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}

	return &selected, nil
}

// Selectx runs the query and scans all rows into a slice of T.
func Selectx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}
