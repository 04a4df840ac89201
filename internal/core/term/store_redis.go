// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/elog/internal/platform/constants"
)

// CachedRepository memoises term lookups in Redis.
//
// Misses are not cached, so a term created after a failed lookup resolves on
// the next request. A Redis outage degrades to the wrapped repository.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (repository *CachedRepository) FindByID(context context.Context, vocabulary Vocabulary, id int64) (*Term, error) {
	key := fmt.Sprintf("%s%s:%d", constants.RedisPrefixTermByID, vocabulary, id)
	return repository.cached(context, key, func() (*Term, error) {
		return repository.next.FindByID(context, vocabulary, id)
	})
}

func (repository *CachedRepository) FindByName(context context.Context, vocabulary Vocabulary, name string) (*Term, error) {
	key := fmt.Sprintf("%s%s:%s", constants.RedisPrefixTermByName, vocabulary, name)
	return repository.cached(context, key, func() (*Term, error) {
		return repository.next.FindByName(context, vocabulary, name)
	})
}

func (repository *CachedRepository) cached(context context.Context, key string, load func() (*Term, error)) (*Term, error) {
	raw, err := repository.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		t := &Term{}
		if jsonErr := json.Unmarshal(raw, t); jsonErr == nil {
			return t, nil
		}
		repository.logger.Warn("term_cache_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		repository.logger.Warn("term_cache_unavailable", slog.String("key", key), slog.Any("error", err))
	}

	t, err := load()
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(t); jsonErr == nil {
		if setErr := repository.client.Set(context, key, payload, repository.ttl).Err(); setErr != nil {
			repository.logger.Warn("term_cache_write_failed", slog.String("key", key), slog.Any("error", setErr))
		}
	}
	return t, nil
}
