// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry_test

import (
	"context"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/apperr"
)

/*
TestNewFilter_Defaults checks the window and listing defaults of a fresh filter.
*/
func TestNewFilter_Defaults(t *testing.T) {
	h := newHarness(t)
	f := h.filter()

	assert.Equal(t, day(2023, time.August, 16), f.EndDate())
	assert.Equal(t, day(2023, time.July, 16), f.StartDate())
	assert.Equal(t, 30, f.DefaultDays())
	assert.Equal(t, 100, f.EntriesPerPage())
	assert.Equal(t, logentry.DateCreated, f.DateColumn())

	field, direction := f.Sort()
	assert.Equal(t, logentry.SortDate, field)
	assert.Equal(t, logentry.Descending, direction)

	assert.Empty(t, f.Logbooks())
	assert.Empty(t, f.Tags())
	assert.Empty(t, f.Users())
}

/*
TestNewFilter_DefaultDays derives the start from a custom window length.
*/
func TestNewFilter_DefaultDays(t *testing.T) {
	h := newHarness(t)
	f := h.filter(logentry.WithDefaultDays(7))

	assert.Equal(t, day(2023, time.August, 8), f.StartDate())
	assert.Equal(t, day(2023, time.August, 16), f.EndDate())
}

/*
TestFilter_DateBounds walks the start and end setters through their edge cases.
*/
func TestFilter_DateBounds(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name      string
		apply     func(f *logentry.Filter)
		wantStart int64
		wantEnd   int64
	}{
		{
			name:      "end_only",
			apply:     func(f *logentry.Filter) { f.SetEndDate(logentry.DateString("2023-08-03")) },
			wantStart: day(2023, time.July, 16),
			wantEnd:   day(2023, time.August, 3),
		},
		{
			name: "end_before_start_repairs_start",
			apply: func(f *logentry.Filter) {
				f.SetStartDate(logentry.DateString("2023-08-10"))
				f.SetEndDate(logentry.DateString("2023-08-05"))
			},
			wantStart: day(2023, time.July, 6),
			wantEnd:   day(2023, time.August, 5),
		},
		{
			name:      "start_after_end_reports_derived_start",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateString("2023-09-01")) },
			wantStart: day(2023, time.July, 17),
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "auto_start",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.Auto()) },
			wantStart: day(2023, time.July, 17),
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "blank_start_is_auto",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateString("  ")) },
			wantStart: day(2023, time.July, 17),
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "unparseable_end_keeps_current",
			apply:     func(f *logentry.Filter) { f.SetEndDate(logentry.DateString("not a date")) },
			wantStart: day(2023, time.July, 16),
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "timestamp",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.Timestamp(day(2023, time.August, 2) + 3600)) },
			wantStart: day(2023, time.August, 2) + 3600,
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "numeric_text_is_timestamp",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateString("1690000000")) },
			wantStart: 1690000000,
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "date_and_clock",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateTime("2023-08-02", "10:30")) },
			wantStart: day(2023, time.August, 2) + 10*3600 + 30*60,
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "date_without_clock_is_midnight",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateTime("2023-08-02", "")) },
			wantStart: day(2023, time.August, 2),
			wantEnd:   day(2023, time.August, 16),
		},
		{
			name:      "day_month_year",
			apply:     func(f *logentry.Filter) { f.SetStartDate(logentry.DateString("04-Aug-2023")) },
			wantStart: day(2023, time.August, 4),
			wantEnd:   day(2023, time.August, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := h.filter()
			tt.apply(f)
			assert.Equal(t, tt.wantStart, f.StartDate())
			assert.Equal(t, tt.wantEnd, f.EndDate())
		})
	}
}

/*
TestFilter_DatesStayOrdered applies every pairing of inputs in both orders and
checks the effective start never reaches the end.
*/
func TestFilter_DatesStayOrdered(t *testing.T) {
	h := newHarness(t)

	inputs := []logentry.DateInput{
		logentry.Auto(),
		logentry.DateString(""),
		logentry.DateString("garbage"),
		logentry.DateString("2023-01-01"),
		logentry.DateString("2023-08-15"),
		logentry.DateString("2024-12-31 23:59"),
		logentry.Timestamp(0),
		logentry.Timestamp(fixedNow.Unix()),
		logentry.DateTime("2023-08-16", "00:00"),
	}

	for _, start := range inputs {
		for _, end := range inputs {
			startFirst := h.filter()
			startFirst.SetStartDate(start)
			startFirst.SetEndDate(end)
			assert.Less(t, startFirst.StartDate(), startFirst.EndDate())

			endFirst := h.filter()
			endFirst.SetEndDate(end)
			endFirst.SetStartDate(start)
			assert.Less(t, endFirst.StartDate(), endFirst.EndDate())
		}
	}
}

/*
TestFilter_Logbooks covers set, add, exclude and failed resolution.
*/
func TestFilter_Logbooks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	books := h.fixture.Logbooks

	f := h.filter()
	require.NoError(t, f.SetLogbooks(ctx, []term.Ref{term.ByName("Book1"), term.ByID(books["Book2"])}))
	assert.Equal(t, map[int64]string{books["Book1"]: "Book1", books["Book2"]: "Book2"}, f.Logbooks())

	require.NoError(t, f.AddLogbook(ctx, term.ParseRef(strconv.FormatInt(books["Book3"], 10))))
	assert.Len(t, f.Logbooks(), 3)

	require.NoError(t, f.SetLogbook(ctx, term.ByName("Book3")))
	assert.Equal(t, map[int64]string{books["Book3"]: "Book3"}, f.Logbooks())

	require.NoError(t, f.ExcludeLogbook(ctx, term.ByName("Book1")))
	assert.Equal(t, map[int64]string{books["Book1"]: "Book1"}, f.ExcludedLogbooks())

	err := f.SetLogbooks(ctx, []term.Ref{term.ByName("Book1"), term.ByName("Missing")})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Logbook term not found", ae.Message)
	assert.Equal(t, map[int64]string{books["Book3"]: "Book3"}, f.Logbooks(), "failed set leaves the logbooks unchanged")

	require.Error(t, f.AddLogbook(ctx, term.ByName("Tag1")), "tags are not logbooks")

	require.NoError(t, f.SetLogbooks(ctx, nil))
	assert.Empty(t, f.Logbooks())
}

/*
TestFilter_Tags mirrors the logbook operations on the tag vocabulary.
*/
func TestFilter_Tags(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	tags := h.fixture.Tags

	f := h.filter()
	require.NoError(t, f.SetTag(ctx, term.ByName("Tag1")))
	require.NoError(t, f.AddTag(ctx, term.ByID(tags["Tag2"])))
	require.NoError(t, f.ExcludeTag(ctx, term.Resolved(term.Term{ID: tags["Tag3"], Vocabulary: term.Tags, Name: "Tag3"})))

	assert.Equal(t, map[int64]string{tags["Tag1"]: "Tag1", tags["Tag2"]: "Tag2"}, f.Tags())
	assert.Equal(t, map[int64]string{tags["Tag3"]: "Tag3"}, f.ExcludedTags())

	err := f.ExcludeTag(ctx, term.ByName("Book1"))
	require.Error(t, err)
	assert.Equal(t, "Tag term not found", apperr.As(err).Message)
	assert.Len(t, f.ExcludedTags(), 1)

	require.NoError(t, f.SetTags(ctx, []term.Ref{}))
	assert.Empty(t, f.Tags())
}

/*
TestFilter_Users covers set, add and unknown authors.
*/
func TestFilter_Users(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	users := h.fixture.Users

	f := h.filter()
	require.NoError(t, f.AddUser(ctx, author.ByName("User1")))
	require.NoError(t, f.AddUser(ctx, author.ByID(users["User2"])))
	assert.Len(t, f.Users(), 2)

	require.NoError(t, f.SetUser(ctx, author.ByName("User3")))
	assert.Equal(t, map[int64]string{users["User3"]: "User3"}, f.Users())

	err := f.SetUser(ctx, author.ByName("Nobody"))
	require.Error(t, err)
	assert.Equal(t, "User not found", apperr.As(err).Message)
	assert.Equal(t, map[int64]string{users["User3"]: "User3"}, f.Users())
}

/*
TestFilter_ApplyRequest maps every recognised key onto the filter.
*/
func TestFilter_ApplyRequest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	values := url.Values{
		"start_date":       {"2023-08-01"},
		"end_date[date]":   {"2023-09-15"},
		"end_date[time]":   {"12:00"},
		"logbooks[]":       {"Book1"},
		"logbooks":         {"Book2"},
		"tags":             {"Tag1", ""},
		"search_str":       {" beam dump "},
		"entries_per_page": {"5"},
		"order":            {"title"},
		"sort":             {"ASC"},
		"page":             {"2"},
	}

	f := h.filter()
	require.NoError(t, f.ApplyRequest(ctx, values))

	assert.Equal(t, day(2023, time.August, 1), f.StartDate())
	assert.Equal(t, day(2023, time.September, 15)+12*3600, f.EndDate())
	assert.Equal(t, map[int64]string{h.fixture.Logbooks["Book1"]: "Book1", h.fixture.Logbooks["Book2"]: "Book2"}, f.Logbooks())
	assert.Equal(t, map[int64]string{h.fixture.Tags["Tag1"]: "Tag1"}, f.Tags())
	assert.Equal(t, "beam dump", f.SearchString())
	assert.Equal(t, 5, f.EntriesPerPage())
	assert.Equal(t, 2, f.Paging().Page)

	field, direction := f.Sort()
	assert.Equal(t, logentry.SortTitle, field)
	assert.Equal(t, logentry.Ascending, direction)
}

/*
TestFilter_ApplyRequest_Lenient keeps the current settings for absent or
unrecognised values.
*/
func TestFilter_ApplyRequest_Lenient(t *testing.T) {
	h := newHarness(t)
	f := h.filter()

	require.NoError(t, f.ApplyRequest(context.Background(), url.Values{
		"order":            {"popularity"},
		"sort":             {"sideways"},
		"entries_per_page": {"many"},
	}))

	field, direction := f.Sort()
	assert.Equal(t, logentry.SortDate, field)
	assert.Equal(t, logentry.Descending, direction)
	assert.Equal(t, 100, f.EntriesPerPage())
	assert.Equal(t, day(2023, time.July, 16), f.StartDate())
	assert.Equal(t, day(2023, time.August, 16), f.EndDate())
}

/*
TestFilter_ApplyRequest_Atomic leaves the filter untouched when a term fails
to resolve.
*/
func TestFilter_ApplyRequest_Atomic(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	f := h.filter()
	require.NoError(t, f.SetLogbook(ctx, term.ByName("Book3")))

	err := f.ApplyRequest(ctx, url.Values{
		"start_date":       {"2023-08-01"},
		"logbooks":         {"Book1"},
		"tags":             {"Missing"},
		"entries_per_page": {"5"},
	})
	require.Error(t, err)
	assert.Equal(t, "Tag term not found", apperr.As(err).Message)

	assert.Equal(t, map[int64]string{h.fixture.Logbooks["Book3"]: "Book3"}, f.Logbooks())
	assert.Empty(t, f.Tags())
	assert.Equal(t, day(2023, time.July, 16), f.StartDate())
	assert.Equal(t, 100, f.EntriesPerPage())
}

/*
TestFilter_Criteria checks the snapshot subtracts exclusions and pages.
*/
func TestFilter_Criteria(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	books := h.fixture.Logbooks

	f := h.filter(logentry.WithDateColumn(logentry.DateChanged))
	require.NoError(t, f.SetLogbooks(ctx, []term.Ref{term.ByName("Book1"), term.ByName("Book2")}))
	require.NoError(t, f.ExcludeLogbook(ctx, term.ByName("Book1")))
	f.SetLimit(10)
	f.SetPage(2)

	criteria := f.Criteria()
	assert.True(t, criteria.Logbooks.Restricted)
	assert.Equal(t, []int64{books["Book2"]}, criteria.Logbooks.Included)
	assert.Equal(t, []int64{books["Book1"]}, criteria.Logbooks.Excluded)
	assert.False(t, criteria.Tags.Restricted)
	assert.Equal(t, logentry.DateChanged, criteria.DateColumn)
	assert.Equal(t, 10, criteria.Limit)
	assert.Equal(t, 20, criteria.Offset)

	f.SetLimit(0)
	criteria = f.Criteria()
	assert.Zero(t, criteria.Limit)
	assert.Zero(t, criteria.Offset)

	f.SetPage(-3)
	assert.Equal(t, 0, f.Paging().Page)
}
