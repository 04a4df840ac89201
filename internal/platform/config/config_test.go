// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/platform/config"
)

/*
TestLoad_Defaults verifies the listing defaults applied when only the DSN is set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite3:///tmp/elog.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "sql", cfg.Listing.QueryStrategy)
	assert.Equal(t, "created", cfg.Listing.DateColumn)
	assert.Equal(t, 30, cfg.Listing.DefaultDays)
	assert.Equal(t, 100, cfg.Listing.EntriesPerPage)
	assert.Equal(t, "SHIFT", cfg.Listing.GroupBy)
	assert.Equal(t, 10*time.Minute, cfg.TermCacheTTL)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_Overrides verifies the ELOG_ prefixed listing settings.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/elog")
	t.Setenv("ELOG_QUERY_STRATEGY", "entity")
	t.Setenv("ELOG_DEFAULT_DAYS", "7")
	t.Setenv("ELOG_TIMEZONE", "America/New_York")
	t.Setenv("EXTRA_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "entity", cfg.Listing.QueryStrategy)
	assert.Equal(t, 7, cfg.Listing.DefaultDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())

	location, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", location.String())
}

/*
TestLoad_Failures covers a missing DSN and an unknown timezone.
*/
func TestLoad_Failures(t *testing.T) {
	t.Run("missing_dsn", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad_timezone", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/elog")
		t.Setenv("ELOG_TIMEZONE", "Mars/Olympus")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
