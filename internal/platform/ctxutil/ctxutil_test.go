// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elog/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-7")
	assert.Equal(t, "req-7", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger covers the request logger and both fallbacks.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	service := slog.New(slog.NewTextHandler(io.Discard, nil))
	request := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Equal(t, service, ctxutil.LoggerOr(ctx, service))

	ctx = ctxutil.WithLogger(ctx, request)
	assert.Equal(t, request, ctxutil.GetLogger(ctx))
	assert.Equal(t, request, ctxutil.LoggerOr(ctx, service))
}
