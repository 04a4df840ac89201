// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app is the composition root shared by the API server and the CLI.

It opens the store, optionally connects the Redis term cache, and builds
every domain service by explicit constructor injection. No business logic
lives here.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/elog/internal/api"
	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/autocomplete"
	"github.com/taibuivan/elog/internal/core/listing"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/lognumber"
	"github.com/taibuivan/elog/internal/core/tabulate"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/config"
	redisstore "github.com/taibuivan/elog/internal/platform/redis"
	"github.com/taibuivan/elog/internal/platform/storage"
)

// App holds the wired services of one process.
type App struct {
	Config  *config.Config
	Storage *storage.Storage
	Redis   *goredis.Client

	Listing      *listing.Service
	Autocomplete *autocomplete.Service
	Lognumber    *lognumber.Service

	logger *slog.Logger
}

// Open connects to the configured store and wires the services.
func Open(context context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := storage.Open(context, cfg.DatabaseDriver, cfg.DatabaseURL, cfg.Debug, logger)
	if err != nil {
		return nil, err
	}

	var cache *goredis.Client
	if cfg.RedisURL != "" {
		cache, err = redisstore.NewClient(context, cfg.RedisURL, logger)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	application, err := New(cfg, store, cache, logger)
	if err != nil {
		application.Close()
		return nil, err
	}
	return application, nil
}

// New wires the services over an open store. cache may be nil.
func New(cfg *config.Config, store *storage.Storage, cache *goredis.Client, logger *slog.Logger) (*App, error) {
	application := &App{Config: cfg, Storage: store, Redis: cache, logger: logger}

	listingConfig, err := ListingConfig(cfg)
	if err != nil {
		return application, err
	}

	// ## Repositories
	var terms term.Repository = term.NewSQLRepository(store.DB)
	if cache != nil {
		terms = term.NewCachedRepository(terms, cache, cfg.TermCacheTTL, logger)
	}
	authors := author.NewSQLRepository(store.DB)
	entries := logentry.NewSQLRepository(store.DB, authors)

	// ## Executors
	executors := []logentry.Executor{
		logentry.NewSQLExecutor(store.DB, entries, logger),
		logentry.NewEntityExecutor(store.ORM, entries, logger),
	}

	// ## Services
	application.Listing, err = listing.NewService(term.NewLookup(terms), author.NewLookup(authors), executors, listingConfig, logger)
	if err != nil {
		return application, err
	}
	application.Autocomplete = autocomplete.NewService(authors, entries)
	application.Lognumber = lognumber.NewService(store.DB, logger)

	return application, nil
}

// ListingConfig validates the ELOG_* settings.
func ListingConfig(cfg *config.Config) (listing.Config, error) {
	strategy, err := logentry.ParseStrategy(cfg.Listing.QueryStrategy)
	if err != nil {
		return listing.Config{}, err
	}

	column, ok := logentry.ParseDateColumn(cfg.Listing.DateColumn)
	if !ok {
		return listing.Config{}, fmt.Errorf("app: invalid ELOG_DATE_COLUMN %q", cfg.Listing.DateColumn)
	}

	groupBy, err := tabulate.ParseGroupBy(cfg.Listing.GroupBy)
	if err != nil {
		return listing.Config{}, err
	}

	location, err := cfg.Location()
	if err != nil {
		return listing.Config{}, err
	}

	return listing.Config{
		Strategy:       strategy,
		DateColumn:     column,
		DefaultDays:    cfg.Listing.DefaultDays,
		EntriesPerPage: cfg.Listing.EntriesPerPage,
		GroupBy:        groupBy,
		Location:       location,
		BasePath:       api.BasePath,
	}, nil
}

// Handlers builds the HTTP handler set, including the health probes.
func (application *App) Handlers() api.Handlers {
	dependencies := api.HealthDependencies{
		DatabaseName:  application.Storage.Driver,
		CheckDatabase: application.Storage.Ping,
	}
	if application.Redis != nil {
		dependencies.CheckCache = func(context context.Context) error {
			return redisstore.Ping(context, application.Redis)
		}
	}
	liveness, readiness := api.NewHealthHandlers(dependencies, application.logger)

	return api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Listing:      listing.NewHandler(application.Listing, application.Config.Debug),
		Autocomplete: autocomplete.NewHandler(application.Autocomplete),
		Lognumber:    lognumber.NewHandler(application.Lognumber),
	}
}

// Close releases the cache client and the store.
func (application *App) Close() {
	if application.Redis != nil {
		if err := application.Redis.Close(); err != nil {
			application.logger.Error("redis_close_failed", slog.Any("error", err))
		}
	}
	application.Storage.Close()
}
