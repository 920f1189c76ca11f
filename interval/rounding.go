// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import "cloudeng.io/calendar"

// Interval represents a rounding boundary used by Floor, Ceiling and
// Range. Week and Monday are equivalent since ISO8601 weeks begin on
// Monday; the other weekdays round to their own most recent occurrence.
type Interval int

const (
	Year Interval = iota + 1
	Quarter
	Month
	Week
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Day
)

func (i Interval) String() string {
	switch i {
	case Year:
		return "year"
	case Quarter:
		return "quarter"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	}
	if wd, ok := i.weekday(); ok {
		return wd.String()
	}
	return "unknown"
}

func (i Interval) weekday() (calendar.Weekday, bool) {
	if i < Monday || i > Sunday {
		return 0, false
	}
	return calendar.Weekday(i - Monday + 1), true
}

// Floor returns the latest interval boundary at or before d: the first
// day of the containing year, quarter or month, the most recent
// occurrence of the given weekday (d itself if it falls on it), or d
// unchanged for Day.
func Floor(i Interval, d calendar.Date) calendar.Date {
	switch i {
	case Year:
		return calendar.CalendarDate{Year: d.Year(), Month: calendar.January, Day: 1}.Date()
	case Quarter:
		cd := d.Calendar()
		month := calendar.Month(3*((int(cd.Month)-1)/3) + 1)
		return calendar.CalendarDate{Year: cd.Year, Month: month, Day: 1}.Date()
	case Month:
		cd := d.Calendar()
		return calendar.CalendarDate{Year: cd.Year, Month: cd.Month, Day: 1}.Date()
	case Day:
		return d
	}
	target := calendar.Monday
	if wd, ok := i.weekday(); ok {
		target = wd
	}
	return d - calendar.Date((int(d.Weekday())+7-int(target))%7)
}

// Ceiling returns the earliest interval boundary at or after d; d itself
// when it already lies on a boundary.
func Ceiling(i Interval, d calendar.Date) calendar.Date {
	floored := Floor(i, d)
	if floored == d {
		return d
	}
	return advance(i, 1, floored)
}

// Range returns the ascending interval boundaries from Ceiling(i, start)
// inclusive to until exclusive, taking every step'th boundary. A step
// below 1 is treated as 1. The result is empty when the first boundary is
// not before until.
func Range(i Interval, step int, start, until calendar.Date) []calendar.Date {
	step = max(1, step)
	var boundaries []calendar.Date
	for d := Ceiling(i, start); d < until; d = advance(i, step, d) {
		boundaries = append(boundaries, d)
	}
	return boundaries
}

// advance moves a boundary date forward by n intervals. Quarter, Month
// and Year boundaries are first of month dates so month arithmetic never
// clamps here.
func advance(i Interval, n int, d calendar.Date) calendar.Date {
	switch i {
	case Year:
		return Add(Years, n, d)
	case Quarter:
		return Add(Months, 3*n, d)
	case Month:
		return Add(Months, n, d)
	case Day:
		return d + calendar.Date(n)
	default:
		return d + calendar.Date(7*n)
	}
}
