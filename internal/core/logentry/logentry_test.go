// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry_test

import (
	"testing"
	"time"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/storage"
	"github.com/taibuivan/elog/internal/platform/storage/storagetest"
)

// fixedNow sits between Entry 2 and Entry 3, so the default 30 day window
// holds Entry 1 and Entry 2 only.
var fixedNow = time.Date(2023, time.August, 15, 13, 45, 0, 0, time.UTC)

func day(year int, month time.Month, d int) int64 {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Unix()
}

type harness struct {
	store   *storage.Storage
	fixture storagetest.Fixture
	terms   *term.Lookup
	authors *author.Lookup
	entries *logentry.SQLRepository
}

func newHarness(t *testing.T) harness {
	t.Helper()
	store := storagetest.Open(t)
	fixture := storagetest.Seed(t, store.DB)
	authors := author.NewSQLRepository(store.DB)

	return harness{
		store:   store,
		fixture: fixture,
		terms:   term.NewLookup(term.NewSQLRepository(store.DB)),
		authors: author.NewLookup(authors),
		entries: logentry.NewSQLRepository(store.DB, authors),
	}
}

// filter returns a UTC filter over the default window at fixedNow.
func (h harness) filter(opts ...logentry.Option) *logentry.Filter {
	base := []logentry.Option{
		logentry.WithClock(func() time.Time { return fixedNow }),
		logentry.WithLocation(time.UTC),
		logentry.WithLogger(storagetest.Logger()),
	}
	return logentry.NewFilter(h.terms, h.authors, append(base, opts...)...)
}

// fullWindow widens f to cover every seeded entry.
func fullWindow(f *logentry.Filter) *logentry.Filter {
	f.SetStartDate(logentry.DateString("2023-08-01"))
	f.SetEndDate(logentry.DateString("2023-09-15"))
	return f
}

func (h harness) executors() []logentry.Executor {
	logger := storagetest.Logger()
	return []logentry.Executor{
		logentry.NewSQLExecutor(h.store.DB, h.entries, logger),
		logentry.NewEntityExecutor(h.store.ORM, h.entries, logger),
	}
}

func titles(entries []*logentry.LogEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Title)
	}
	return names
}
