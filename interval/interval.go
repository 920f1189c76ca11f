// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package interval provides unit based arithmetic on calendar.Date values
// and rounding and sequence generation over interval boundaries such as
// month starts or particular weekdays.
package interval

import "cloudeng.io/calendar"

// Unit represents a calendar unit used by Add and Diff.
type Unit int

const (
	Years Unit = iota + 1
	Months
	Weeks
	Days
)

func (u Unit) String() string {
	switch u {
	case Years:
		return "years"
	case Months:
		return "months"
	case Weeks:
		return "weeks"
	case Days:
		return "days"
	}
	return "unknown"
}

// Add returns the date n units after d, or before for negative n. Adding
// months, and hence years, clamps to the end of the target month when the
// day of month does not exist there, eg. one month after Jan 31 2000 is
// Feb 29 2000.
func Add(u Unit, n int, d calendar.Date) calendar.Date {
	switch u {
	case Years:
		return addMonths(12*n, d)
	case Months:
		return addMonths(n, d)
	case Weeks:
		return d + calendar.Date(7*n)
	default:
		return d + calendar.Date(n)
	}
}

func addMonths(n int, d calendar.Date) calendar.Date {
	cd := d.Calendar()
	months := monthIndex(cd) + n
	year := floorDiv(months, 12) + 1
	month := calendar.Month(floorMod(months, 12) + 1)
	day := min(cd.Day, calendar.DaysInMonth(year, month))
	return calendar.CalendarDate{Year: year, Month: month, Day: day}.Date()
}

// monthIndex returns the zero based count of whole months from Jan of
// year 1 to cd's month.
func monthIndex(cd calendar.CalendarDate) int {
	return 12*(cd.Year-1) + int(cd.Month) - 1
}

// Diff returns the number of whole units from d1 to d2, truncated toward
// zero and hence negative when d2 precedes d1. Diff and Add are not
// inverses for months and years because of end of month clamping.
func Diff(u Unit, d1, d2 calendar.Date) int {
	switch u {
	case Years:
		return diffMonths(d1, d2) / 12
	case Months:
		return diffMonths(d1, d2)
	case Weeks:
		return int(d2-d1) / 7
	default:
		return int(d2 - d1)
	}
}

// diffMonths measures each date in hundredths of a month, the day of
// month (at most 31) never carrying into the next month's integer part,
// so that truncating the scaled difference counts whole months.
func diffMonths(d1, d2 calendar.Date) int {
	return (months100(d2.Calendar()) - months100(d1.Calendar())) / 100
}

func months100(cd calendar.CalendarDate) int {
	return 100*monthIndex(cd) + cd.Day
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
