// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tabulate turns a list of log entries into a display-ready listing.

A listing is an ordered list of elements: one table per group (or a single
"No entries" message), always followed by one pager element. Cells carry
either plain text or link descriptors, so the presentation layer decides
how to render them.

Grouping:

  - NONE: one flat table with full "2006-01-02 15:04" dates.
  - SHIFT: one table per shift and day, headed "OWL Wednesday (02-Aug-2023)".
  - DAY: one table per calendar day, headed "Wednesday (02-Aug-2023)".
*/
package tabulate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/constants"
	"github.com/taibuivan/elog/pkg/pagination"
	"github.com/taibuivan/elog/pkg/slice"
)

// # Render Structure

// Link points a label at a target path.
type Link struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Cell is plain text or one or more links.
type Cell struct {
	Text  string `json:"text,omitempty"`
	Links []Link `json:"links,omitempty"`
}

// Table is one group of rows.
type Table struct {
	Heading string   `json:"heading,omitempty"`
	Caption string   `json:"caption"`
	Header  []string `json:"header"`
	Rows    [][]Cell `json:"rows"`
}

// ElementKind discriminates the members of a listing.
type ElementKind string

const (
	ElementTable ElementKind = "table"
	ElementEmpty ElementKind = "empty"
	ElementPager ElementKind = "pager"
)

// Element is one member of a [Listing].
type Element struct {
	Kind    ElementKind      `json:"kind"`
	Table   *Table           `json:"table,omitempty"`
	Message string           `json:"message,omitempty"`
	Pager   *pagination.Meta `json:"pager,omitempty"`
}

// Listing is the tabulated result handed to the presentation layer.
type Listing struct {
	GroupBy  GroupBy   `json:"group_by"`
	Elements []Element `json:"elements"`
}

// Header names the columns of every table, in order.
var Header = []string{"Lognumber", "Flags", "Logbooks", "Date", "Author", "Title"}

// Date layouts of the date column.
const (
	FullDateLayout  = "2006-01-02 15:04"
	ShortDateLayout = "15:04"
)

// # Tabulator

// Tabulator groups and formats entries. It holds configuration only and
// may be shared.
type Tabulator struct {
	groupBy    GroupBy
	dateColumn logentry.DateColumn
	location   *time.Location
	caption    string
	basePath   string
}

type Option func(*Tabulator)

func WithGroupBy(mode GroupBy) Option {
	return func(tabulator *Tabulator) { tabulator.groupBy = mode }
}

func WithDateColumn(column logentry.DateColumn) Option {
	return func(tabulator *Tabulator) { tabulator.dateColumn = column }
}

// WithLocation sets the zone used for dates and shift boundaries.
func WithLocation(location *time.Location) Option {
	return func(tabulator *Tabulator) { tabulator.location = location }
}

func WithCaption(caption string) Option {
	return func(tabulator *Tabulator) { tabulator.caption = caption }
}

// WithBasePath prefixes every link target, e.g. "/api/v1".
func WithBasePath(path string) Option {
	return func(tabulator *Tabulator) { tabulator.basePath = strings.TrimRight(path, "/") }
}

func NewTabulator(opts ...Option) *Tabulator {
	tabulator := &Tabulator{
		groupBy:    GroupShift,
		dateColumn: logentry.DateCreated,
		location:   time.Local,
		caption:    constants.ListingCaption,
	}
	for _, opt := range opts {
		opt(tabulator)
	}
	return tabulator
}

// GroupBy reports the configured grouping.
func (tabulator *Tabulator) GroupBy() GroupBy { return tabulator.groupBy }

/*
Tabulate renders entries, already in listing order, as grouped tables.

Parameters:
  - entries: the materialised result of one query
  - pager: paging state appended as the last element

Returns:
  - Listing: tables (or one empty element) followed by the pager
  - error: apperr INTERNAL if an entry lacks its author or logbooks
*/
func (tabulator *Tabulator) Tabulate(entries []*logentry.LogEntry, pager pagination.Meta) (Listing, error) {
	listing := Listing{GroupBy: tabulator.groupBy}

	if len(entries) == 0 {
		listing.Elements = append(listing.Elements, Element{Kind: ElementEmpty, Message: constants.EmptyListingMessage})
	}

	var (
		tables []*Table
		byKey  = map[string]*Table{}
	)
	for _, entry := range entries {
		row, err := tabulator.row(entry)
		if err != nil {
			return Listing{}, err
		}

		heading := groupHeading(tabulator.groupBy, tabulator.timeOf(entry))
		table, ok := byKey[heading]
		if !ok {
			table = &Table{Heading: heading, Caption: tabulator.caption, Header: Header}
			byKey[heading] = table
			tables = append(tables, table)
		}
		table.Rows = append(table.Rows, row)
	}

	for _, table := range tables {
		listing.Elements = append(listing.Elements, Element{Kind: ElementTable, Table: table})
	}

	listing.Elements = append(listing.Elements, Element{Kind: ElementPager, Pager: &pager})
	return listing, nil
}

func (tabulator *Tabulator) timeOf(entry *logentry.LogEntry) time.Time {
	return time.Unix(entry.Timestamp(tabulator.dateColumn), 0).In(tabulator.location)
}

func (tabulator *Tabulator) row(entry *logentry.LogEntry) ([]Cell, error) {
	if entry.Author == nil {
		return nil, apperr.Internal(fmt.Errorf("tabulate: entry %d has no author", entry.ID))
	}
	if len(entry.Logbooks) == 0 {
		return nil, apperr.Internal(fmt.Errorf("tabulate: entry %d has no logbook", entry.ID))
	}

	entryTarget := tabulator.entryPath(entry.ID)

	logbooks := slice.Map(entry.Logbooks, func(book term.Term) Link {
		return Link{Target: tabulator.logbookPath(book.Name), Label: book.Name}
	})

	return []Cell{
		{Links: []Link{{Target: entryTarget, Label: strconv.FormatInt(entry.Lognumber, 10)}}},
		{Text: flags(entry)},
		{Links: logbooks},
		{Text: tabulator.formatDate(entry)},
		{Links: []Link{{Target: tabulator.userPath(entry.Author.ID), Label: entry.Author.Name}}},
		{Links: []Link{{Target: entryTarget, Label: entry.Title}}},
	}, nil
}

// flags is "<attachments>,<comments>", images counting as attachments.
func flags(entry *logentry.LogEntry) string {
	return fmt.Sprintf("%d,%d", entry.AttachmentCount+entry.ImageCount, entry.CommentCount)
}

func (tabulator *Tabulator) formatDate(entry *logentry.LogEntry) string {
	layout := ShortDateLayout
	if tabulator.groupBy == GroupNone {
		layout = FullDateLayout
	}
	return tabulator.timeOf(entry).Format(layout)
}

// # Links

func (tabulator *Tabulator) entryPath(id int64) string {
	return fmt.Sprintf("%s/entries/%d", tabulator.basePath, id)
}

func (tabulator *Tabulator) userPath(id int64) string {
	return fmt.Sprintf("%s/users/%d", tabulator.basePath, id)
}

func (tabulator *Tabulator) logbookPath(name string) string {
	return fmt.Sprintf("%s/logbooks/%s/entries", tabulator.basePath, url.PathEscape(name))
}
