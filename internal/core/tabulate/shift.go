// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tabulate

import (
	"fmt"
	"strings"
	"time"
)

// # Grouping Modes

// GroupBy selects how a listing is partitioned into tables.
type GroupBy string

const (
	GroupNone  GroupBy = "NONE"
	GroupShift GroupBy = "SHIFT"
	GroupDay   GroupBy = "DAY"
)

// GroupModes lists the accepted grouping names.
var GroupModes = []string{string(GroupNone), string(GroupShift), string(GroupDay)}

// ParseGroupBy accepts a grouping name case-insensitively.
func ParseGroupBy(raw string) (GroupBy, error) {
	switch mode := GroupBy(strings.ToUpper(strings.TrimSpace(raw))); mode {
	case GroupNone, GroupShift, GroupDay:
		return mode, nil
	}
	return "", fmt.Errorf("tabulate: unknown grouping %q", raw)
}

// # Shifts

// Shift is one of the three operational periods of a day.
type Shift string

const (
	ShiftOwl   Shift = "OWL"
	ShiftDay   Shift = "DAY"
	ShiftSwing Shift = "SWING"
)

// shiftByHour maps each hour of the day to its shift.
var shiftByHour = [24]Shift{
	ShiftOwl, ShiftOwl, ShiftOwl, ShiftOwl, ShiftOwl, ShiftOwl, ShiftOwl,
	ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay,
	ShiftSwing, ShiftSwing, ShiftSwing, ShiftSwing, ShiftSwing, ShiftSwing, ShiftSwing, ShiftSwing,
	ShiftOwl,
}

// ShiftOf returns the shift covering the hour of t.
func ShiftOf(t time.Time) Shift {
	return shiftByHour[t.Hour()]
}

// headingLayout renders the calendar part of a group heading.
const headingLayout = "Monday (02-Jan-2006)"

// shiftDay is the calendar day a shift entry is filed under. The owl shift
// starting at 23:00 belongs to the following day.
func shiftDay(t time.Time) time.Time {
	return t.Add(time.Hour)
}

// groupHeading returns the heading of the group holding t.
func groupHeading(mode GroupBy, t time.Time) string {
	switch mode {
	case GroupShift:
		return fmt.Sprintf("%s %s", ShiftOf(t), shiftDay(t).Format(headingLayout))
	case GroupDay:
		return t.Format(headingLayout)
	}
	return ""
}
