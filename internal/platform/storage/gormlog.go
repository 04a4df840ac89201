// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taibuivan/elog/internal/platform/ctxutil"
)

// SlowQueryThreshold marks an entity-strategy statement as slow.
const SlowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm output into slog. Statements ride on the request
// logger when the context carries one, so they share its request_id.
type GormLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger returns a bridge at level writing to logger.
func NewGormLogger(logger *slog.Logger, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{logger: logger, level: level}
}

func (bridge *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLogger{logger: bridge.logger, level: level}
}

func (bridge *GormLogger) Info(context context.Context, message string, data ...any) {
	if bridge.level >= gormlogger.Info {
		bridge.from(context).InfoContext(context, "gorm_info", slog.String("message", fmt.Sprintf(message, data...)))
	}
}

func (bridge *GormLogger) Warn(context context.Context, message string, data ...any) {
	if bridge.level >= gormlogger.Warn {
		bridge.from(context).WarnContext(context, "gorm_warning", slog.String("message", fmt.Sprintf(message, data...)))
	}
}

func (bridge *GormLogger) Error(context context.Context, message string, data ...any) {
	if bridge.level >= gormlogger.Error {
		bridge.from(context).ErrorContext(context, "gorm_error", slog.String("message", fmt.Sprintf(message, data...)))
	}
}

// Trace logs one executed statement. Not-found results are not failures.
func (bridge *GormLogger) Trace(context context.Context, begin time.Time, fc func() (string, int64), err error) {
	if bridge.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	statement := func() []any {
		sql, rows := fc()
		return []any{
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		}
	}

	logger := bridge.from(context)
	switch {
	case err != nil && bridge.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		logger.ErrorContext(context, "gorm_query_failed", append(statement(), slog.Any("error", err))...)
	case elapsed > SlowQueryThreshold && bridge.level >= gormlogger.Warn:
		logger.WarnContext(context, "gorm_slow_query", statement()...)
	case bridge.level >= gormlogger.Info:
		logger.DebugContext(context, "gorm_query", statement()...)
	}
}

func (bridge *GormLogger) from(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, bridge.logger)
}
