// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package database defines the driver-neutral data access contract used by every
repository in the Elog service.

Architecture:

  - The contract mirrors the pgx call shape (context first, variadic args).
  - [postgres.NewDB] adapts a pgxpool, [sqlite.NewDB] adapts any database/sql handle.
  - SQL text always uses numbered placeholders ($1, $2, ...), which both
    PostgreSQL and SQLite accept when they appear in ascending order.
*/
package database

import (
	"context"
	"fmt"
	"strings"
)

// # Contract

// Rows is the cursor returned by [Querier.Query].
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Row is the single-row result returned by [Querier.QueryRow].
type Row interface {
	Scan(dest ...any) error
}

// Querier is implemented by both connection pools and transactions.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

// Tx is an open transaction.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DB is a connection pool capable of starting transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (Tx, error)
	Ping(ctx context.Context) error
}

// # Query Helpers

// Placeholders renders count numbered placeholders starting after offset.
//
// Example:
//
//	database.Placeholders(2, 3) // "$3, $4, $5"
func Placeholders(offset, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", offset+i+1)
	}
	return strings.Join(parts, ", ")
}

// Int64Args converts ids into a variadic argument slice.
func Int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
