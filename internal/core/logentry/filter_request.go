// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/elog/internal/core/term"
)

// Request parameters understood by [Filter.ApplyRequest].
const (
	ParamStartDate      = "start_date"
	ParamEndDate        = "end_date"
	ParamLogbooks       = "logbooks"
	ParamTags           = "tags"
	ParamSearch         = "search_str"
	ParamEntriesPerPage = "entries_per_page"
	ParamOrder          = "order"
	ParamSort           = "sort"
	ParamPage           = "page"
)

/*
ApplyRequest populates the filter from query parameters.

Recognised keys:

	start_date, end_date           date text, or [date] and [time] sub keys
	logbooks, logbooks[]           names or ids, replaces the included logbooks
	tags, tags[]                   names or ids, replaces the included tags
	search_str                     free text
	entries_per_page               integer page size
	order                          date | title | lognumber
	sort                           asc | desc
	page                           zero-based page

Absent keys and unrecognised order or sort values leave the current setting.
If any logbook or tag fails to resolve the error is returned and the filter
is left exactly as it was.
*/
func (filter *Filter) ApplyRequest(context context.Context, values url.Values) error {
	draft := filter.clone()

	if input, ok := dateParam(values, ParamStartDate); ok {
		draft.SetStartDate(input)
	}
	if input, ok := dateParam(values, ParamEndDate); ok {
		draft.SetEndDate(input)
	}

	if refs := termParams(values, ParamLogbooks); len(refs) > 0 {
		if err := draft.SetLogbooks(context, refs); err != nil {
			return err
		}
	}
	if refs := termParams(values, ParamTags); len(refs) > 0 {
		if err := draft.SetTags(context, refs); err != nil {
			return err
		}
	}

	if search := strings.TrimSpace(values.Get(ParamSearch)); search != "" {
		draft.SetSearch(search)
	}

	if limit, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamEntriesPerPage))); err == nil {
		draft.SetLimit(limit)
	}

	if page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage))); err == nil {
		draft.SetPage(page)
	}

	if field, ok := ParseSortField(values.Get(ParamOrder)); ok {
		draft.sortField = field
	}
	if direction, ok := ParseSortDirection(values.Get(ParamSort)); ok {
		draft.sortDirection = direction
	}

	*filter = *draft
	return nil
}

// dateParam reads "key" as free text or the "key[date]"/"key[time]" pair.
func dateParam(values url.Values, key string) (DateInput, bool) {
	if raw, ok := values[key]; ok && len(raw) > 0 {
		return DateString(raw[0]), true
	}

	date, hasDate := values[key+"[date]"]
	if !hasDate {
		return DateInput{}, false
	}

	var clock string
	if raw := values[key+"[time]"]; len(raw) > 0 {
		clock = raw[0]
	}
	var day string
	if len(date) > 0 {
		day = date[0]
	}
	return DateTime(day, clock), true
}

// termParams merges "key" and "key[]" values, skipping blanks.
func termParams(values url.Values, key string) []term.Ref {
	var refs []term.Ref
	for _, name := range []string{key, key + "[]"} {
		for _, raw := range values[name] {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			refs = append(refs, term.ParseRef(raw))
		}
	}
	return refs
}
