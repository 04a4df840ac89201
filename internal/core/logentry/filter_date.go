// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// # Date Input

type dateKind int

const (
	dateAuto dateKind = iota
	dateTimestamp
	dateString
	dateParts
)

// DateInput is a start or end bound as supplied by a caller. The zero value
// is [Auto].
type DateInput struct {
	kind      dateKind
	timestamp int64
	text      string
	date      string
	clock     string
}

// Auto asks for the bound to be derived from the other one.
func Auto() DateInput { return DateInput{} }

// Timestamp is a Unix time in seconds.
func Timestamp(unix int64) DateInput { return DateInput{kind: dateTimestamp, timestamp: unix} }

// DateString is free-form text such as "2023-08-15" or "2023-08-15 10:20".
// Purely numeric text is read as a Unix timestamp.
func DateString(text string) DateInput { return DateInput{kind: dateString, text: text} }

// DateTime is a separate date and clock pair, as posted by the filter form.
// An empty clock means midnight.
func DateTime(date, clock string) DateInput {
	return DateInput{kind: dateParts, date: date, clock: clock}
}

// extraLayouts extends the jinzhu/now defaults with the forms the logbook
// filter form and older bookmarks use.
var extraLayouts = []string{
	"2006/1/2",
	"2006/1/2 15:4",
	"02-Jan-2006",
	"02-Jan-2006 15:04",
	"Jan 2, 2006",
	"Jan 2, 2006 15:04",
	"January 2, 2006",
	"Monday (02-Jan-2006)",
}

// dateParser turns a [DateInput] into a Unix timestamp in one location.
type dateParser struct {
	config *now.Config
}

func newDateParser(location *time.Location) dateParser {
	layouts := make([]string, 0, len(now.TimeFormats)+len(extraLayouts))
	layouts = append(layouts, now.TimeFormats...)
	layouts = append(layouts, extraLayouts...)

	return dateParser{config: &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: location,
		TimeFormats:  layouts,
	}}
}

// parse reports false for [Auto], blank and unparseable input.
func (parser dateParser) parse(input DateInput) (int64, bool) {
	switch input.kind {
	case dateTimestamp:
		return input.timestamp, true

	case dateString:
		return parser.parseText(input.text)

	case dateParts:
		date := strings.TrimSpace(input.date)
		if date == "" {
			return 0, false
		}
		clock := strings.TrimSpace(input.clock)
		if clock == "" {
			clock = "00:00"
		}
		return parser.parseText(date + " " + clock)
	}

	return 0, false
}

func (parser dateParser) parseText(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if unix, err := strconv.ParseInt(text, 10, 64); err == nil {
		return unix, true
	}

	parsed, err := parser.config.Parse(text)
	if err != nil {
		return 0, false
	}
	return parsed.Unix(), true
}

// midnight returns the start of the day holding unix, shifted by days.
func (parser dateParser) midnight(unix int64, days int) int64 {
	shifted := time.Unix(unix, 0).In(parser.config.TimeLocation).AddDate(0, 0, days)
	return parser.config.With(shifted).BeginningOfDay().Unix()
}

// # Date Operations

// SetDefaultDates resets the window to the defaultDays days before today,
// ending at midnight tonight.
func (filter *Filter) SetDefaultDates() {
	today := filter.clock().Unix()
	filter.endDate = filter.dates.midnight(today, 1)
	filter.startDate = filter.dates.midnight(today, -filter.defaultDays)
}

// SetStartDate sets the lower bound. Auto, blank and unparseable input
// derive the bound from the end date instead.
func (filter *Filter) SetStartDate(input DateInput) {
	start, ok := filter.dates.parse(input)
	if !ok {
		start = filter.autoStartDate(filter.endDate)
	}
	filter.startDate = start

	if filter.startDate > filter.endDate {
		filter.logger.Debug("start_date_after_end_date_ignored",
			slog.Int64("start_date", filter.startDate),
			slog.Int64("end_date", filter.endDate),
		)
	}
}

// SetEndDate sets the upper bound. Auto, blank and unparseable input keep
// the current end date. A start date at or after the new end is replaced by
// the derived default.
func (filter *Filter) SetEndDate(input DateInput) {
	if end, ok := filter.dates.parse(input); ok {
		filter.endDate = end
	}

	if filter.endDate <= filter.startDate {
		repaired := filter.autoStartDate(filter.endDate)
		filter.logger.Debug("start_date_repaired",
			slog.Int64("requested", filter.startDate),
			slog.Int64("repaired", repaired),
			slog.Int64("end_date", filter.endDate),
		)
		filter.startDate = repaired
	}
}

// StartDate is the effective lower bound. While a requested start lies at
// or after the end date the derived default is reported instead, so the
// bounds are always ordered.
func (filter *Filter) StartDate() int64 {
	if filter.endDate <= filter.startDate {
		return filter.autoStartDate(filter.endDate)
	}
	return filter.startDate
}

func (filter *Filter) EndDate() int64 { return filter.endDate }

// autoStartDate is midnight defaultDays days before end.
func (filter *Filter) autoStartDate(end int64) int64 {
	return filter.dates.midnight(end, -filter.defaultDays)
}
