// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// Parse parses an ISO8601 date string in calendar, ordinal or week form,
// in either the extended format (2024-09-26, 2024-270, 2024-W39-4) or the
// basic format (20240926, 2024270, 2024W394). The year is at least 4
// digits and may be prefixed with '-'; years beyond 9999 are written with
// as many digits as they need, as Date.String emits them. Omitted
// trailing components default to the first day or weekday of the
// enclosing period, so "2024-09" is Sep 1 and "2024" is Jan 1. The entire
// input must be consumed.
//
// Input that does not match the grammar returns ErrInvalidISO8601Date.
// Input that matches the grammar but names an out of range date returns
// the corresponding validation error from FromCalendar, FromOrdinal or
// FromWeek, eg. "2018-02-29" returns a CalendarDateError for (2018, 2, 29).
func Parse(val string) (Date, error) {
	start, negative := 0, false
	if len(val) > 0 && val[0] == '-' {
		negative = true
		start = 1
	}
	run := start
	for run < len(val) && val[run] >= '0' && val[run] <= '9' {
		run++
	}
	if run-start < 4 {
		return 0, ErrInvalidISO8601Date
	}
	// The leading digit run contains the year and, in the basic format,
	// the month and day tokens as well. Take the minimal 4 digit year
	// first so that 20180926 still splits as 2018-09-26, then extend it a
	// digit at a time so that 11018-06-01 and bare 11018 parse too.
	for end := start + 4; end <= run; end++ {
		year, _, _ := digits(val, start, end-start)
		if negative {
			year = -year
		}
		if d, ok, err := parseAfterYear(val, end, year); ok {
			return d, err
		}
	}
	return 0, ErrInvalidISO8601Date
}

// parseAfterYear matches the remainder of val from pos against the
// month, ordinal day and week sub-grammars, reporting whether any of them
// consumed the input through to the end.
func parseAfterYear(val string, pos, year int) (Date, bool, error) {
	if pos == len(val) {
		d, err := FromOrdinal(year, 1)
		return d, true, err
	}
	// The basic format is ambiguous: after the year, MMDD, MM and DDD are
	// all plain digit runs. Try calendar form first, then ordinal, then
	// week, committing to the first whose tokens consume the entire input.
	// The extended format is tried in the same order for consistency.
	candidates := [3]func(string, int, int) (Date, bool, error){
		parseCalendarBasic, parseOrdinalBasic, parseWeekBasic,
	}
	if val[pos] == '-' {
		pos++
		candidates = [3]func(string, int, int) (Date, bool, error){
			parseCalendarExt, parseOrdinalExt, parseWeekExt,
		}
	}
	for _, candidate := range candidates {
		if d, ok, err := candidate(val, pos, year); ok {
			return d, true, err
		}
	}
	return 0, false, nil
}

// digits consumes exactly n decimal digits of val starting at pos.
func digits(val string, pos, n int) (int, int, bool) {
	if pos+n > len(val) {
		return 0, 0, false
	}
	v := 0
	for i := pos; i < pos+n; i++ {
		c := val[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, pos + n, true
}

// Each candidate parser reports whether the remainder of val from pos
// matched its sub-grammar through end of input; only then is its
// (Date, error) result meaningful and the alternation committed.

func parseCalendarExt(val string, pos, year int) (Date, bool, error) {
	month, pos, ok := digits(val, pos, 2)
	if !ok {
		return 0, false, nil
	}
	day := 1
	if pos < len(val) {
		if val[pos] != '-' {
			return 0, false, nil
		}
		if day, pos, ok = digits(val, pos+1, 2); !ok || pos != len(val) {
			return 0, false, nil
		}
	}
	d, err := FromCalendar(year, Month(month), day)
	return d, true, err
}

func parseOrdinalExt(val string, pos, year int) (Date, bool, error) {
	day, pos, ok := digits(val, pos, 3)
	if !ok || pos != len(val) {
		return 0, false, nil
	}
	d, err := FromOrdinal(year, day)
	return d, true, err
}

func parseWeekExt(val string, pos, year int) (Date, bool, error) {
	if pos >= len(val) || val[pos] != 'W' {
		return 0, false, nil
	}
	week, pos, ok := digits(val, pos+1, 2)
	if !ok {
		return 0, false, nil
	}
	weekday := 1
	if pos < len(val) {
		if val[pos] != '-' {
			return 0, false, nil
		}
		if weekday, pos, ok = digits(val, pos+1, 1); !ok || pos != len(val) {
			return 0, false, nil
		}
	}
	d, err := FromWeek(year, week, Weekday(weekday))
	return d, true, err
}

func parseCalendarBasic(val string, pos, year int) (Date, bool, error) {
	month, pos, ok := digits(val, pos, 2)
	if !ok {
		return 0, false, nil
	}
	day := 1
	if pos < len(val) {
		if day, pos, ok = digits(val, pos, 2); !ok || pos != len(val) {
			return 0, false, nil
		}
	}
	d, err := FromCalendar(year, Month(month), day)
	return d, true, err
}

func parseOrdinalBasic(val string, pos, year int) (Date, bool, error) {
	day, pos, ok := digits(val, pos, 3)
	if !ok || pos != len(val) {
		return 0, false, nil
	}
	d, err := FromOrdinal(year, day)
	return d, true, err
}

func parseWeekBasic(val string, pos, year int) (Date, bool, error) {
	if pos >= len(val) || val[pos] != 'W' {
		return 0, false, nil
	}
	week, pos, ok := digits(val, pos+1, 2)
	if !ok {
		return 0, false, nil
	}
	weekday := 1
	if pos < len(val) {
		if weekday, pos, ok = digits(val, pos, 1); !ok || pos != len(val) {
			return 0, false, nil
		}
	}
	d, err := FromWeek(year, week, Weekday(weekday))
	return d, true, err
}

// DateList represents a list of Dates.
type DateList []Date

// Parse a comma separated list of ISO8601 dates. All entries are parsed
// and their errors, if any, returned together.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	dates := make(DateList, 0, len(parts))
	errs := errors.M{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		var d Date
		if err := d.Parse(part); err != nil {
			errs.Append(fmt.Errorf("%q: %w", part, err))
			continue
		}
		dates = append(dates, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = dates
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains the given date.
func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}
