// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/listing"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/tabulate"
	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/pkg/pagination"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "elog.db"))
	t.Setenv("ELOG_TIMEZONE", "UTC")
}

/*
TestCommands runs migrate, lognumber and entries against a fresh SQLite file.
*/
func TestCommands(t *testing.T) {
	sqliteEnv(t)

	out, err := execute(t, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "migrate up: ok")

	out, err = execute(t, "lognumber", "next", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, strings.Fields(out))

	out, err = execute(t, "entries", "--start", "2023-08-01", "--end", "2023-09-15")
	require.NoError(t, err)
	assert.Contains(t, out, "sql entries, 2023-08-01 to 2023-09-15")
	assert.Contains(t, out, "No entries")

	out, err = execute(t, "entries", "--explain", "--strategy", "entity")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	_, err = execute(t, "entries", "--logbook", "Missing")
	assert.Error(t, err)
}

/*
TestCommands_InvalidFlags fails before touching the database.
*/
func TestCommands_InvalidFlags(t *testing.T) {
	sqliteEnv(t)

	_, err := execute(t, "entries", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, "format", apperr.As(err).Details[0].Field)

	_, err = execute(t, "lognumber", "next", "--count", "0")
	require.Error(t, err)
	assert.Equal(t, "count", apperr.As(err).Details[0].Field)
}

/*
TestRenderListing prints headings, link labels and the pager line.
*/
func TestRenderListing(t *testing.T) {
	result := &listing.Result{
		Strategy: logentry.StrategySQL,
		Window:   listing.Window{StartDate: 1690848000, EndDate: 1694736000},
		Listing: tabulate.Listing{
			GroupBy: tabulate.GroupShift,
			Elements: []tabulate.Element{
				{
					Kind: tabulate.ElementTable,
					Table: &tabulate.Table{
						Heading: "DAY Friday (04-Aug-2023)",
						Header:  tabulate.Header,
						Rows: [][]tabulate.Cell{{
							{Links: []tabulate.Link{{Target: "/entries/2", Label: "3000002"}}},
							{Text: "0,0"},
							{Links: []tabulate.Link{{Label: "Book1"}, {Label: "Book2"}}},
							{Text: "10:20"},
							{Links: []tabulate.Link{{Label: "User1"}}},
							{Links: []tabulate.Link{{Label: "Entry 2"}}},
						}},
					},
				},
				{Kind: tabulate.ElementPager, Pager: &pagination.Meta{Page: 0, Limit: 10, Count: 1}},
			},
		},
	}

	var out bytes.Buffer
	require.NoError(t, renderListing(&out, result))

	text := out.String()
	assert.Contains(t, text, "sql entries, 2023-08-01 to 2023-09-15")
	assert.Contains(t, text, "DAY Friday (04-Aug-2023)")
	assert.Contains(t, text, "Book1, Book2")
	assert.Contains(t, text, "page 0 (1 shown, next: false)")
}
