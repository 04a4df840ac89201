// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storagetest creates throwaway SQLite databases for repository tests.

Every database is migrated with the embedded schema, so tests exercise the
same DDL the service ships with.
*/
package storagetest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/migration"
	"github.com/taibuivan/elog/internal/platform/sqlite"
	"github.com/taibuivan/elog/internal/platform/storage"
)

// Logger discards everything; tests assert on results, not log lines.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns a migrated, empty SQLite storage closed at test cleanup.
func Open(t *testing.T) *storage.Storage {
	t.Helper()

	path := filepath.Join(t.TempDir(), "elog.db")
	require.NoError(t, migration.RunUp(migration.DriverSQLite, path, Logger()))

	handle, err := sqlite.Open(context.Background(), path, Logger())
	require.NoError(t, err)

	store, err := storage.FromSQLite(handle, false, Logger())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return store
}

// # Fixture

// Fixture records the ids of the seeded rows by name.
type Fixture struct {
	Logbooks map[string]int64
	Tags     map[string]int64
	Users    map[string]int64
	Entries  map[string]int64

	// Lognumbers maps entry titles to their lognumber.
	Lognumbers map[string]int64
}

// Timestamps of the seeded entries, all UTC.
var (
	Entry1Created = time.Date(2023, time.August, 1, 15, 30, 0, 0, time.UTC)
	Entry2Created = time.Date(2023, time.August, 4, 10, 20, 0, 0, time.UTC)
	Entry3Created = time.Date(2023, time.September, 1, 0, 30, 0, 0, time.UTC)
	DraftCreated  = time.Date(2023, time.August, 2, 9, 0, 0, 0, time.UTC)
)

type seedEntry struct {
	title     string
	lognumber int64
	author    string
	created   time.Time
	status    int
	logbooks  []string
	tags      []string
}

// Seed inserts the standard logbook fixture:
//
//	Entry 1  User1  2023-08-01 15:30  {Book1}        {Tag1}
//	Entry 2  User1  2023-08-04 10:20  {Book1, Book2} {Tag1, Tag2}
//	Entry 3  User2  2023-09-01 00:30  {Book3}        {Tag3}
//	Draft    User3  2023-08-02 09:00  {Book1}        {Tag1}   unpublished
//
// Entry 1 also carries one attachment, one image, two comments and a
// superseded revision.
func Seed(t *testing.T, db database.DB) Fixture {
	t.Helper()
	ctx := context.Background()

	fixture := Fixture{
		Logbooks:   map[string]int64{},
		Tags:       map[string]int64{},
		Users:      map[string]int64{},
		Entries:    map[string]int64{},
		Lognumbers: map[string]int64{},
	}

	insertID := func(query string, args ...any) int64 {
		var id int64
		require.NoError(t, db.QueryRow(ctx, query, args...).Scan(&id))
		return id
	}

	for _, name := range []string{"Book1", "Book2", "Book3"} {
		fixture.Logbooks[name] = insertID(`INSERT INTO term (vocabulary, name) VALUES ($1, $2) RETURNING id`, "logbooks", name)
	}
	for _, name := range []string{"Tag1", "Tag2", "Tag3"} {
		fixture.Tags[name] = insertID(`INSERT INTO term (vocabulary, name) VALUES ($1, $2) RETURNING id`, "tags", name)
	}

	users := []struct{ name, first, last string }{
		{"User1", "Ada", "Lovelace"},
		{"User2", "Grace", "Hopper"},
		{"User3", "Alan", "Turing"},
	}
	for _, user := range users {
		fixture.Users[user.name] = insertID(
			`INSERT INTO account (name, first_name, last_name, mail) VALUES ($1, $2, $3, $4) RETURNING id`,
			user.name, user.first, user.last, user.name+"@example.org")
	}

	entries := []seedEntry{
		{"Entry 1", 3000001, "User1", Entry1Created, 1, []string{"Book1"}, []string{"Tag1"}},
		{"Entry 2", 3000002, "User1", Entry2Created, 1, []string{"Book1", "Book2"}, []string{"Tag1", "Tag2"}},
		{"Entry 3", 3000003, "User2", Entry3Created, 1, []string{"Book3"}, []string{"Tag3"}},
		{"Draft", 3000004, "User3", DraftCreated, 0, []string{"Book1"}, []string{"Tag1"}},
	}

	for _, entry := range entries {
		entryID := insertID(`INSERT INTO logentry (revision_id, lognumber) VALUES (0, $1) RETURNING id`, entry.lognumber)

		if entry.title == "Entry 1" {
			insertID(`INSERT INTO logentry_revision (entry_id, title, author_id, status, created, changed)
				VALUES ($1, $2, $3, 1, $4, $5) RETURNING revision_id`,
				entryID, "Entry 1 (first draft)", fixture.Users[entry.author], entry.created.Unix(), entry.created.Unix())
		}

		revisionID := insertID(`INSERT INTO logentry_revision (entry_id, title, author_id, status, created, changed)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING revision_id`,
			entryID, entry.title, fixture.Users[entry.author], entry.status, entry.created.Unix(), entry.created.Add(time.Hour).Unix())

		_, err := db.Exec(ctx, `UPDATE logentry SET revision_id = $1 WHERE id = $2`, revisionID, entryID)
		require.NoError(t, err)

		for _, book := range entry.logbooks {
			_, err := db.Exec(ctx, `INSERT INTO logentry_logbook (entry_id, logbook_id) VALUES ($1, $2)`, entryID, fixture.Logbooks[book])
			require.NoError(t, err)
		}
		for _, tag := range entry.tags {
			_, err := db.Exec(ctx, `INSERT INTO logentry_tag (entry_id, tag_id) VALUES ($1, $2)`, entryID, fixture.Tags[tag])
			require.NoError(t, err)
		}

		fixture.Entries[entry.title] = entryID
		fixture.Lognumbers[entry.title] = entry.lognumber
	}

	entry1 := fixture.Entries["Entry 1"]
	_, err := db.Exec(ctx, `INSERT INTO logentry_file (entry_id, kind, filename) VALUES ($1, 'attachment', 'trip.pdf'), ($2, 'image', 'scope.png')`, entry1, entry1)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `INSERT INTO comment_statistics (entry_id, comment_count) VALUES ($1, 2)`, entry1)
	require.NoError(t, err)

	return fixture
}
