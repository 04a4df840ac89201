// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/elog/internal/platform/redis"
)

/*
TestNewClient connects, pings, and reports an unreachable cache.
*/
func TestNewClient(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := miniredis.RunT(t)

	client, err := redisstore.NewClient(ctx, "redis://"+server.Addr()+"/0", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.NoError(t, redisstore.Ping(ctx, client))

	server.Close()
	assert.Error(t, redisstore.Ping(ctx, client))

	_, err = redisstore.NewClient(ctx, "http://not-redis", logger)
	assert.ErrorContains(t, err, "REDIS_URL")
}
