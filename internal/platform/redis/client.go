// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the optional term cache.

Every listing request resolves its logbook and tag references, and the
vocabularies change rarely, so [term.CachedRepository] keeps resolved terms
in Redis for TERM_CACHE_TTL. A Redis outage degrades /ready but never fails
a listing: the cached repository falls through to SQL.

When REDIS_URL is empty no client is created and terms are read straight
from the relational store.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Term lookups are small GET/SET pairs; a short timeout makes a slow cache
// fall through to SQL quickly.
const (
	poolSize     = 10
	minIdleConns = 2
	dialTimeout  = 2 * time.Second
	opTimeout    = 500 * time.Millisecond
	pingTimeout  = 2 * time.Second
)

// NewClient parses redisURL, applies the cache pool settings and pings once.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: REDIS_URL, e.g. "redis://localhost:6379/0".
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid REDIS_URL: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = opTimeout
	options.WriteTimeout = opTimeout

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("term_cache_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}

// Ping backs the cache check of /ready.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
