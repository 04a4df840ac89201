// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sqlite provides the embedded SQLite backend and a [database.DB]
adapter over any database/sql handle.

It is used for single-node deployments, the elogctl command line tool and the
repository test suites, which run every query against a real SQLite file.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	// sqlite3 driver registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/taibuivan/elog/internal/platform/database"
)

// DriverName is the database/sql driver name registered by go-sqlite3.
const DriverName = "sqlite3"

// Open opens the SQLite database at dsn and verifies the connection.
//
// A "sqlite3://" URL prefix is accepted so the same DATABASE_URL works for the
// migration runner and the repositories.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	path := strings.TrimPrefix(dsn, "sqlite3://")

	handle, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open failed: %w", err)
	}

	// SQLite serialises writers; a single connection keeps transactions simple.
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return handle, nil
}

// # database/sql Adapter

// sqlDB adapts a [*sql.DB] to [database.DB].
type sqlDB struct {
	handle *sql.DB
}

// NewDB wraps a database/sql handle. Any driver works, which lets tests pass
// a sqlmock connection.
func NewDB(handle *sql.DB) database.DB {
	return &sqlDB{handle: handle}
}

func (db *sqlDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := db.handle.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

func (db *sqlDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return db.handle.QueryRowContext(ctx, query, args...)
}

func (db *sqlDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := db.handle.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (db *sqlDB) Begin(ctx context.Context) (database.Tx, error) {
	tx, err := db.handle.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx}, nil
}

func (db *sqlDB) Ping(ctx context.Context) error {
	return db.handle.PingContext(ctx)
}

// sqlTx adapts a [*sql.Tx] to [database.Tx].
type sqlTx struct {
	tx *sql.Tx
}

func (tx *sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := tx.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

func (tx *sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return tx.tx.QueryRowContext(ctx, query, args...)
}

func (tx *sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := tx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (tx *sqlTx) Commit(ctx context.Context) error {
	return tx.tx.Commit()
}

func (tx *sqlTx) Rollback(ctx context.Context) error {
	return tx.tx.Rollback()
}

// sqlRows gives [*sql.Rows] the pgx-style Close without a return value.
type sqlRows struct {
	*sql.Rows
}

func (rows sqlRows) Close() {
	_ = rows.Rows.Close()
}
