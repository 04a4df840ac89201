// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/elog/internal/platform/database/schema"
)

// Strategy names a query executor.
type Strategy string

const (
	// StrategySQL joins the membership tables directly. An entry filed
	// under any excluded term is dropped.
	StrategySQL Strategy = "sql"

	// StrategyEntity evaluates conditions per stored membership value. An
	// entry survives an exclusion while another of its terms still matches.
	StrategyEntity Strategy = "entity"
)

// ParseStrategy accepts "sql" or "entity", case-insensitively.
func ParseStrategy(raw string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(raw))) {
	case StrategySQL:
		return StrategySQL, nil
	case StrategyEntity:
		return StrategyEntity, nil
	}
	return "", fmt.Errorf("logentry: unknown query strategy %q", raw)
}

/*
Executor runs a [Filter] against the store.

Executors hold no per-query state. Every call snapshots the filter, so a
filter mutated between calls is always queried as it currently stands.
*/
type Executor interface {
	Strategy() Strategy

	// Describe renders the query the filter would run, for debugging.
	Describe(context context.Context, filter *Filter) (string, error)

	// ResultIDs returns (revision, entry) pairs in listing order, one per revision.
	ResultIDs(context context.Context, filter *Filter) ([]ResultID, error)

	// ResultEntries loads the matching entries in listing order.
	ResultEntries(context context.Context, filter *Filter) ([]*LogEntry, error)
}

// loadResults materialises the entries behind ids.
func loadResults(context context.Context, entries Repository, ids []ResultID) ([]*LogEntry, error) {
	if len(ids) == 0 {
		return []*LogEntry{}, nil
	}
	return entries.LoadMany(context, EntryIDs(ids))
}

// dedupe keeps the first row of each revision.
func dedupe(rows []ResultID) []ResultID {
	seen := make(map[int64]struct{}, len(rows))
	unique := rows[:0]
	for _, row := range rows {
		if _, ok := seen[row.RevisionID]; ok {
			continue
		}
		seen[row.RevisionID] = struct{}{}
		unique = append(unique, row)
	}
	return unique
}

// dateColumn is the revision column behind a DateColumn.
func dateColumn(column DateColumn) string {
	if column == DateChanged {
		return schema.LogentryRevision.Changed
	}
	return schema.LogentryRevision.Created
}

// orderColumn is the qualified column for the sort field, using alias r
// for the revision and e for the entry.
func orderColumn(criteria Criteria) string {
	switch criteria.SortField {
	case SortTitle:
		return "r." + schema.LogentryRevision.Title
	case SortLognumber:
		return "e." + schema.Logentry.Lognumber
	default:
		return "r." + dateColumn(criteria.DateColumn)
	}
}
