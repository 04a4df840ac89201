// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/constants"
	"github.com/taibuivan/elog/pkg/pagination"
)

// TermResolver resolves logbook and tag references.
type TermResolver interface {
	ResolveRef(context context.Context, ref term.Ref, vocabulary term.Vocabulary) (term.Term, error)
}

// AuthorResolver resolves author references.
type AuthorResolver interface {
	ResolveRef(context context.Context, ref author.Ref) (author.Author, error)
}

/*
Filter is the mutable description of a log entry query.

Dimensions (dates, logbooks, tags, users) combine with AND; several values
within one dimension combine with OR. A Filter belongs to one request and
must not be shared between goroutines.
*/
type Filter struct {
	terms   TermResolver
	authors AuthorResolver
	logger  *slog.Logger
	clock   func() time.Time
	dates   dateParser

	startDate   int64
	endDate     int64
	defaultDays int
	dateColumn  DateColumn

	logbooks         *termSet
	excludedLogbooks *termSet
	tags             *termSet
	excludedTags     *termSet
	users            *termSet

	entriesPerPage int
	page           int
	sortField      SortField
	sortDirection  SortDirection
	searchString   string
}

// Option customises a new [Filter].
type Option func(*Filter)

// WithClock overrides the wall clock used for the default window.
func WithClock(clock func() time.Time) Option {
	return func(filter *Filter) { filter.clock = clock }
}

// WithLocation sets the zone in which "midnight" is computed.
func WithLocation(location *time.Location) Option {
	return func(filter *Filter) { filter.dates = newDateParser(location) }
}

func WithDefaultDays(days int) Option {
	return func(filter *Filter) { filter.defaultDays = days }
}

func WithDateColumn(column DateColumn) Option {
	return func(filter *Filter) { filter.dateColumn = column }
}

func WithEntriesPerPage(limit int) Option {
	return func(filter *Filter) { filter.entriesPerPage = limit }
}

func WithLogger(logger *slog.Logger) Option {
	return func(filter *Filter) { filter.logger = logger }
}

// NewFilter returns a filter over the default date window with no
// logbook, tag or user restriction.
func NewFilter(terms TermResolver, authors AuthorResolver, opts ...Option) *Filter {
	filter := &Filter{
		terms:            terms,
		authors:          authors,
		logger:           slog.Default(),
		clock:            time.Now,
		dates:            newDateParser(time.Local),
		defaultDays:      constants.DefaultDays,
		dateColumn:       DateCreated,
		logbooks:         newTermSet(),
		excludedLogbooks: newTermSet(),
		tags:             newTermSet(),
		excludedTags:     newTermSet(),
		users:            newTermSet(),
		entriesPerPage:   constants.DefaultEntriesPerPage,
		page:             pagination.FirstPage,
		sortField:        SortDate,
		sortDirection:    Descending,
	}

	for _, opt := range opts {
		opt(filter)
	}

	filter.SetDefaultDates()
	return filter
}

// clone copies the filter so a batch of changes can be discarded on error.
func (filter *Filter) clone() *Filter {
	copied := *filter
	copied.logbooks = filter.logbooks.clone()
	copied.excludedLogbooks = filter.excludedLogbooks.clone()
	copied.tags = filter.tags.clone()
	copied.excludedTags = filter.excludedTags.clone()
	copied.users = filter.users.clone()
	return &copied
}

// # Logbooks

// AddLogbook adds one logbook to the included set.
func (filter *Filter) AddLogbook(context context.Context, ref term.Ref) error {
	t, err := filter.terms.ResolveRef(context, ref, term.Logbooks)
	if err != nil {
		return err
	}
	filter.logbooks.add(t.ID, t.Name)
	return nil
}

// SetLogbook replaces the included logbooks with exactly one.
func (filter *Filter) SetLogbook(context context.Context, ref term.Ref) error {
	return filter.SetLogbooks(context, []term.Ref{ref})
}

// SetLogbooks replaces the included logbooks. An empty list lifts the
// logbook restriction. Nothing changes unless every reference resolves.
func (filter *Filter) SetLogbooks(context context.Context, refs []term.Ref) error {
	resolved, err := filter.resolveTerms(context, refs, term.Logbooks)
	if err != nil {
		return err
	}
	filter.logbooks = resolved
	return nil
}

// ExcludeLogbook adds one logbook to the excluded set.
func (filter *Filter) ExcludeLogbook(context context.Context, ref term.Ref) error {
	t, err := filter.terms.ResolveRef(context, ref, term.Logbooks)
	if err != nil {
		return err
	}
	filter.excludedLogbooks.add(t.ID, t.Name)
	return nil
}

// # Tags

func (filter *Filter) AddTag(context context.Context, ref term.Ref) error {
	t, err := filter.terms.ResolveRef(context, ref, term.Tags)
	if err != nil {
		return err
	}
	filter.tags.add(t.ID, t.Name)
	return nil
}

func (filter *Filter) SetTag(context context.Context, ref term.Ref) error {
	return filter.SetTags(context, []term.Ref{ref})
}

// SetTags replaces the included tags; see [Filter.SetLogbooks].
func (filter *Filter) SetTags(context context.Context, refs []term.Ref) error {
	resolved, err := filter.resolveTerms(context, refs, term.Tags)
	if err != nil {
		return err
	}
	filter.tags = resolved
	return nil
}

func (filter *Filter) ExcludeTag(context context.Context, ref term.Ref) error {
	t, err := filter.terms.ResolveRef(context, ref, term.Tags)
	if err != nil {
		return err
	}
	filter.excludedTags.add(t.ID, t.Name)
	return nil
}

func (filter *Filter) resolveTerms(context context.Context, refs []term.Ref, vocabulary term.Vocabulary) (*termSet, error) {
	set := newTermSet()
	for _, ref := range refs {
		t, err := filter.terms.ResolveRef(context, ref, vocabulary)
		if err != nil {
			return nil, err
		}
		set.add(t.ID, t.Name)
	}
	return set, nil
}

// # Users

// AddUser adds one author to the included set.
func (filter *Filter) AddUser(context context.Context, ref author.Ref) error {
	a, err := filter.authors.ResolveRef(context, ref)
	if err != nil {
		return err
	}
	filter.users.add(a.ID, a.Name)
	return nil
}

// SetUser replaces the included authors with exactly one.
func (filter *Filter) SetUser(context context.Context, ref author.Ref) error {
	a, err := filter.authors.ResolveRef(context, ref)
	if err != nil {
		return err
	}
	filter.users = newTermSet()
	filter.users.add(a.ID, a.Name)
	return nil
}

// # Paging, Sorting and Search

// SetLimit sets the page size. Zero or less disables paging.
func (filter *Filter) SetLimit(limit int) { filter.entriesPerPage = limit }

// SetPage selects a zero-based page.
func (filter *Filter) SetPage(page int) {
	if page < pagination.FirstPage {
		page = pagination.FirstPage
	}
	filter.page = page
}

func (filter *Filter) SetSort(field SortField, direction SortDirection) {
	filter.sortField = field
	filter.sortDirection = direction
}

func (filter *Filter) SetDateColumn(column DateColumn) { filter.dateColumn = column }

// SetSearch records a free-text term. No executor matches on it yet.
func (filter *Filter) SetSearch(text string) { filter.searchString = text }

// # Accessors

func (filter *Filter) DefaultDays() int { return filter.defaultDays }
func (filter *Filter) DateColumn() DateColumn { return filter.dateColumn }
func (filter *Filter) EntriesPerPage() int { return filter.entriesPerPage }
func (filter *Filter) SearchString() string { return filter.searchString }
func (filter *Filter) Logbooks() map[int64]string { return filter.logbooks.snapshot() }
func (filter *Filter) ExcludedLogbooks() map[int64]string { return filter.excludedLogbooks.snapshot() }
func (filter *Filter) Tags() map[int64]string { return filter.tags.snapshot() }
func (filter *Filter) ExcludedTags() map[int64]string { return filter.excludedTags.snapshot() }
func (filter *Filter) Users() map[int64]string { return filter.users.snapshot() }

func (filter *Filter) Sort() (SortField, SortDirection) {
	return filter.sortField, filter.sortDirection
}

// Paging reports the requested page and size.
func (filter *Filter) Paging() pagination.Params {
	return pagination.Params{Page: filter.page, Limit: filter.entriesPerPage}
}

// # Term Sets

// termSet is an insertion-ordered id to name map.
type termSet struct {
	ids   []int64
	names map[int64]string
}

func newTermSet() *termSet {
	return &termSet{names: map[int64]string{}}
}

func (set *termSet) add(id int64, name string) {
	if _, ok := set.names[id]; !ok {
		set.ids = append(set.ids, id)
	}
	set.names[id] = name
}

func (set *termSet) has(id int64) bool {
	_, ok := set.names[id]
	return ok
}

func (set *termSet) len() int { return len(set.ids) }

func (set *termSet) list() []int64 {
	return append([]int64(nil), set.ids...)
}

// without lists the ids not present in other.
func (set *termSet) without(other *termSet) []int64 {
	ids := make([]int64, 0, len(set.ids))
	for _, id := range set.ids {
		if !other.has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (set *termSet) snapshot() map[int64]string {
	names := make(map[int64]string, len(set.names))
	for id, name := range set.names {
		names[id] = name
	}
	return names
}

func (set *termSet) clone() *termSet {
	return &termSet{ids: set.list(), names: set.snapshot()}
}
