// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logentry builds filtered queries over log entries and loads the
matching records.

Architecture:

  - [Filter] is the mutable, per-request query description.
  - [Executor] turns a Filter into a query. Two strategies exist and differ
    only in how exclusions treat entries filed under several terms.
  - [Repository] materialises entry records for a list of ids.
*/
package logentry

import (
	"strings"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/term"
)

// StatusPublished is the revision status of a visible entry. Anything at or
// below zero is unpublished.
const StatusPublished = 1

// LogEntry is a materialised entry at its current revision.
type LogEntry struct {
	ID         int64  `json:"id"`
	RevisionID int64  `json:"revision_id"`
	Lognumber  int64  `json:"lognumber"`
	Title      string `json:"title"`
	Created    int64  `json:"created"`
	Changed    int64  `json:"changed"`

	// Author is nil when the account no longer exists.
	Author *author.Author `json:"author"`

	Logbooks []term.Term `json:"logbooks"`
	Tags     []term.Term `json:"tags"`

	AttachmentCount int `json:"attachment_count"`
	ImageCount      int `json:"image_count"`

	// CommentCount is the precomputed comment statistic.
	CommentCount int `json:"comment_count"`
}

// Timestamp returns the entry date held in column.
func (entry *LogEntry) Timestamp(column DateColumn) int64 {
	if column == DateChanged {
		return entry.Changed
	}
	return entry.Created
}

// ResultID is one row of an executed query.
type ResultID struct {
	RevisionID int64 `json:"revision_id" gorm:"column:revision_id"`
	EntryID    int64 `json:"entry_id" gorm:"column:entry_id"`
}

// EntryIDs projects results onto entry ids, keeping order.
func EntryIDs(results []ResultID) []int64 {
	ids := make([]int64, len(results))
	for i, result := range results {
		ids[i] = result.EntryID
	}
	return ids
}

// Reference is an autocomplete suggestion pointing at an entry.
type Reference struct {
	EntryID   int64  `json:"entry_id"`
	Lognumber int64  `json:"lognumber"`
	Title     string `json:"title"`
}

// # Enumerations

// DateColumn is the revision column used for date filtering and sorting.
type DateColumn string

const (
	DateCreated DateColumn = "created"
	DateChanged DateColumn = "changed"
)

// ParseDateColumn accepts "created" or "changed", case-insensitively.
func ParseDateColumn(raw string) (DateColumn, bool) {
	switch DateColumn(strings.ToLower(strings.TrimSpace(raw))) {
	case DateCreated:
		return DateCreated, true
	case DateChanged:
		return DateChanged, true
	}
	return "", false
}

// SortField is the logical sort key of a listing.
type SortField string

const (
	SortDate      SortField = "date"
	SortTitle     SortField = "title"
	SortLognumber SortField = "lognumber"
)

func ParseSortField(raw string) (SortField, bool) {
	switch SortField(strings.ToLower(strings.TrimSpace(raw))) {
	case SortDate:
		return SortDate, true
	case SortTitle:
		return SortTitle, true
	case SortLognumber:
		return SortLognumber, true
	}
	return "", false
}

// SortDirection is "asc" or "desc".
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func ParseSortDirection(raw string) (SortDirection, bool) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(raw))) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	}
	return "", false
}

// SQL renders the direction as an ORDER BY keyword.
func (direction SortDirection) SQL() string {
	if direction == Ascending {
		return "ASC"
	}
	return "DESC"
}
