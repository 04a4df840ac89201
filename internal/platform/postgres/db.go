// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/elog/internal/platform/database"
)

// poolDB adapts a [pgxpool.Pool] to [database.DB].
type poolDB struct {
	pool *pgxpool.Pool
}

// NewDB wraps pool so repositories can use it through [database.DB].
func NewDB(pool *pgxpool.Pool) database.DB {
	return &poolDB{pool: pool}
}

func (db *poolDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return db.pool.Query(ctx, query, args...)
}

func (db *poolDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return db.pool.QueryRow(ctx, query, args...)
}

func (db *poolDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *poolDB) Begin(ctx context.Context) (database.Tx, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &poolTx{tx: tx}, nil
}

func (db *poolDB) Ping(ctx context.Context) error {
	return Ping(ctx, db.pool)
}

// poolTx adapts a [pgx.Tx] to [database.Tx].
type poolTx struct {
	tx pgx.Tx
}

func (tx *poolTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return tx.tx.Query(ctx, query, args...)
}

func (tx *poolTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return tx.tx.QueryRow(ctx, query, args...)
}

func (tx *poolTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := tx.tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (tx *poolTx) Commit(ctx context.Context) error {
	return tx.tx.Commit(ctx)
}

func (tx *poolTx) Rollback(ctx context.Context) error {
	return tx.tx.Rollback(ctx)
}
