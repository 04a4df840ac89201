// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"fmt"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
	"github.com/taibuivan/elog/pkg/fold"
)

// File kinds counted as attachments.
const (
	FileAttachment = "attachment"
	FileImage      = "image"
)

// SQLRepository loads entries with one query per related table.
type SQLRepository struct {
	db      database.Querier
	authors author.Repository
}

func NewSQLRepository(db database.Querier, authors author.Repository) *SQLRepository {
	return &SQLRepository{db: db, authors: authors}
}

func (repository *SQLRepository) LoadMany(context context.Context, ids []int64) ([]*LogEntry, error) {
	if len(ids) == 0 {
		return []*LogEntry{}, nil
	}

	byID, authorOf, err := repository.loadRevisions(context, ids)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]int64, 0, len(authorOf))
	for _, authorID := range authorOf {
		authorIDs = append(authorIDs, authorID)
	}
	authors, err := repository.authors.FindMany(context, authorIDs)
	if err != nil {
		return nil, err
	}

	if err := repository.loadTerms(context, byID, ids, schema.LogentryLogbook, func(entry *LogEntry, t term.Term) {
		entry.Logbooks = append(entry.Logbooks, t)
	}); err != nil {
		return nil, err
	}

	if err := repository.loadTerms(context, byID, ids, schema.LogentryTag, func(entry *LogEntry, t term.Term) {
		entry.Tags = append(entry.Tags, t)
	}); err != nil {
		return nil, err
	}

	if err := repository.loadFileCounts(context, byID, ids); err != nil {
		return nil, err
	}

	if err := repository.loadCommentCounts(context, byID, ids); err != nil {
		return nil, err
	}

	entries := make([]*LogEntry, 0, len(ids))
	for _, id := range ids {
		entry, ok := byID[id]
		if !ok {
			continue
		}
		if authorID, ok := authorOf[id]; ok {
			entry.Author = authors[authorID]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadRevisions reads each entry at its current revision, plus the author id
// of entries that still have one.
func (repository *SQLRepository) loadRevisions(context context.Context, ids []int64) (map[int64]*LogEntry, map[int64]int64, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, r.%s, r.%s, r.%s, r.%s
		FROM %s e
		JOIN %s r ON r.%s = e.%s AND r.%s = e.%s
		WHERE e.%s IN (%s)
	`,
		schema.Logentry.ID, schema.Logentry.RevisionID, schema.Logentry.Lognumber,
		schema.LogentryRevision.Title, schema.LogentryRevision.Created, schema.LogentryRevision.Changed, schema.LogentryRevision.AuthorID,
		schema.Logentry.Table,
		schema.LogentryRevision.Table,
		schema.LogentryRevision.RevisionID, schema.Logentry.RevisionID,
		schema.LogentryRevision.EntryID, schema.Logentry.ID,
		schema.Logentry.ID, database.Placeholders(0, len(ids)),
	)

	rows, err := repository.db.Query(context, query, database.Int64Args(ids)...)
	if err != nil {
		return nil, nil, dberr.Wrap(err, "load_entries")
	}
	defer rows.Close()

	byID := make(map[int64]*LogEntry, len(ids))
	authorOf := make(map[int64]int64, len(ids))
	for rows.Next() {
		entry := &LogEntry{Logbooks: []term.Term{}, Tags: []term.Term{}}
		var authorID *int64
		if err := rows.Scan(&entry.ID, &entry.RevisionID, &entry.Lognumber,
			&entry.Title, &entry.Created, &entry.Changed, &authorID); err != nil {
			return nil, nil, dberr.Wrap(err, "scan_entry")
		}
		byID[entry.ID] = entry
		if authorID != nil {
			authorOf[entry.ID] = *authorID
		}
	}

	return byID, authorOf, dberr.Wrap(rows.Err(), "iterate_entries")
}

func (repository *SQLRepository) loadTerms(context context.Context, byID map[int64]*LogEntry, ids []int64, table schema.MembershipTable, attach func(*LogEntry, term.Term)) error {
	query := fmt.Sprintf(`
		SELECT m.%s, t.%s, t.%s, t.%s
		FROM %s m
		JOIN %s t ON t.%s = m.%s
		WHERE m.%s IN (%s)
		ORDER BY t.%s ASC
	`,
		table.EntryID, schema.Term.ID, schema.Term.Vocabulary, schema.Term.Name,
		table.Table,
		schema.Term.Table, schema.Term.ID, table.TermID,
		table.EntryID, database.Placeholders(0, len(ids)),
		schema.Term.Name,
	)

	rows, err := repository.db.Query(context, query, database.Int64Args(ids)...)
	if err != nil {
		return dberr.Wrap(err, "load_"+table.Table)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID    int64
			t          term.Term
			vocabulary string
		)
		if err := rows.Scan(&entryID, &t.ID, &vocabulary, &t.Name); err != nil {
			return dberr.Wrap(err, "scan_"+table.Table)
		}
		t.Vocabulary = term.Vocabulary(vocabulary)
		if entry, ok := byID[entryID]; ok {
			attach(entry, t)
		}
	}
	return dberr.Wrap(rows.Err(), "iterate_"+table.Table)
}

func (repository *SQLRepository) loadFileCounts(context context.Context, byID map[int64]*LogEntry, ids []int64) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, COUNT(*)
		FROM %s
		WHERE %s IN (%s)
		GROUP BY %s, %s
	`,
		schema.LogentryFile.EntryID, schema.LogentryFile.Kind,
		schema.LogentryFile.Table,
		schema.LogentryFile.EntryID, database.Placeholders(0, len(ids)),
		schema.LogentryFile.EntryID, schema.LogentryFile.Kind,
	)

	rows, err := repository.db.Query(context, query, database.Int64Args(ids)...)
	if err != nil {
		return dberr.Wrap(err, "count_entry_files")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID int64
			kind    string
			count   int
		)
		if err := rows.Scan(&entryID, &kind, &count); err != nil {
			return dberr.Wrap(err, "scan_entry_files")
		}
		entry, ok := byID[entryID]
		if !ok {
			continue
		}
		switch kind {
		case FileAttachment:
			entry.AttachmentCount = count
		case FileImage:
			entry.ImageCount = count
		}
	}
	return dberr.Wrap(rows.Err(), "iterate_entry_files")
}

func (repository *SQLRepository) loadCommentCounts(context context.Context, byID map[int64]*LogEntry, ids []int64) error {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s IN (%s)`,
		schema.CommentStatistics.EntryID, schema.CommentStatistics.CommentCount,
		schema.CommentStatistics.Table,
		schema.CommentStatistics.EntryID, database.Placeholders(0, len(ids)),
	)

	rows, err := repository.db.Query(context, query, database.Int64Args(ids)...)
	if err != nil {
		return dberr.Wrap(err, "load_comment_statistics")
	}
	defer rows.Close()

	for rows.Next() {
		var entryID int64
		var count int
		if err := rows.Scan(&entryID, &count); err != nil {
			return dberr.Wrap(err, "scan_comment_statistics")
		}
		if entry, ok := byID[entryID]; ok {
			entry.CommentCount = count
		}
	}
	return dberr.Wrap(rows.Err(), "iterate_comment_statistics")
}

func (repository *SQLRepository) SearchReferences(context context.Context, fragment string, withLognumber bool, limit int) ([]Reference, error) {
	match := fmt.Sprintf("LOWER(r.%s) LIKE $2", schema.LogentryRevision.Title)
	if withLognumber {
		match = fmt.Sprintf("(%s OR CAST(e.%s AS TEXT) LIKE $2)", match, schema.Logentry.Lognumber)
	}

	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, r.%s
		FROM %s e
		JOIN %s r ON r.%s = e.%s AND r.%s = e.%s
		WHERE r.%s > $1 AND %s
		ORDER BY e.%s DESC
		LIMIT $3
	`,
		schema.Logentry.ID, schema.Logentry.Lognumber, schema.LogentryRevision.Title,
		schema.Logentry.Table,
		schema.LogentryRevision.Table,
		schema.LogentryRevision.RevisionID, schema.Logentry.RevisionID,
		schema.LogentryRevision.EntryID, schema.Logentry.ID,
		schema.LogentryRevision.Status, match,
		schema.Logentry.Lognumber,
	)

	rows, err := repository.db.Query(context, query, 0, fold.Contains(fragment), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "search_references")
	}
	defer rows.Close()

	references := make([]Reference, 0)
	for rows.Next() {
		var reference Reference
		if err := rows.Scan(&reference.EntryID, &reference.Lognumber, &reference.Title); err != nil {
			return nil, dberr.Wrap(err, "scan_reference")
		}
		references = append(references, reference)
	}
	return references, dberr.Wrap(rows.Err(), "iterate_references")
}
