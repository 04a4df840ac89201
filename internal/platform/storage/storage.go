// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage opens the relational backend selected by DATABASE_DRIVER and
hands out both access paths the repositories need.

Architecture:

  - [Storage.DB] is the raw SQL contract used by the relational-join executor
    and every hand written repository.
  - [Storage.ORM] is a gorm session over the same connections, used by the
    entity-abstraction executor.
*/
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/migration"
	"github.com/taibuivan/elog/internal/platform/postgres"
	"github.com/taibuivan/elog/internal/platform/sqlite"
)

// Storage bundles the open handles of one backend.
type Storage struct {
	Driver string
	DB     database.DB
	ORM    *gorm.DB

	closers []func()
}

// Open connects to the backend named by driver.
//
// Parameters:
//   - ctx: Context for the initial connection attempt
//   - driver: "postgres" or "sqlite"
//   - dsn: DATABASE_URL
//   - debug: log every gorm statement when true
func Open(ctx context.Context, driver, dsn string, debug bool, logger *slog.Logger) (*Storage, error) {
	switch driver {
	case migration.DriverPostgres:
		pool, err := postgres.NewPool(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return FromPool(pool, debug, logger)

	case migration.DriverSQLite:
		handle, err := sqlite.Open(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		storage, err := FromSQLite(handle, debug, logger)
		if err != nil {
			_ = handle.Close()
			return nil, err
		}
		return storage, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}

// FromPool builds a Storage over an existing pgx pool. Close releases the pool.
func FromPool(pool *pgxpool.Pool, debug bool, logger *slog.Logger) (*Storage, error) {
	bridge := postgres.StdlibDB(pool)

	orm, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: bridge}), gormConfig(debug, logger))
	if err != nil {
		_ = bridge.Close()
		pool.Close()
		return nil, fmt.Errorf("storage: gorm postgres: %w", err)
	}

	return &Storage{
		Driver:  migration.DriverPostgres,
		DB:      postgres.NewDB(pool),
		ORM:     orm,
		closers: []func(){pool.Close, func() { _ = bridge.Close() }},
	}, nil
}

// FromSQLite builds a Storage over an open SQLite handle. Close closes it.
func FromSQLite(handle *sql.DB, debug bool, logger *slog.Logger) (*Storage, error) {
	orm, err := gorm.Open(&gormsqlite.Dialector{DriverName: sqlite.DriverName, Conn: handle}, gormConfig(debug, logger))
	if err != nil {
		return nil, fmt.Errorf("storage: gorm sqlite: %w", err)
	}

	return &Storage{
		Driver:  migration.DriverSQLite,
		DB:      sqlite.NewDB(handle),
		ORM:     orm,
		closers: []func(){func() { _ = handle.Close() }},
	}, nil
}

// Ping verifies the backend is reachable.
func (storage *Storage) Ping(ctx context.Context) error {
	return storage.DB.Ping(ctx)
}

// Close releases every handle in reverse order of acquisition.
func (storage *Storage) Close() {
	for i := len(storage.closers) - 1; i >= 0; i-- {
		storage.closers[i]()
	}
	storage.closers = nil
}

func gormConfig(debug bool, logger *slog.Logger) *gorm.Config {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return &gorm.Config{
		Logger: NewGormLogger(logger, level),
	}
}
