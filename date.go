// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a day-granularity proleptic Gregorian calendar:
// a canonical integer day count (Date) with lossless conversions to and
// from calendar, ordinal and ISO8601 week dates, an ISO8601 date string
// parser, a pattern based formatter and support for obtaining the current
// date from a clock.
package calendar

import "fmt"

// Date is a count of days since the day before 0001-01-01, ie. day 1 is
// Jan 1 of year 1 (the 'Rata Die' scheme). It is the canonical
// representation from which all other forms are derived; integer ordering
// of Date values matches chronological ordering. Values before day 1
// represent proleptic dates and are fully supported.
type Date int

// Year returns the calendar year containing d.
func (d Date) Year() int {
	return yearForDay(int(d))
}

// Month returns the month containing d.
func (d Date) Month() Month {
	return d.Calendar().Month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.Calendar().Day
}

// OrdinalDay returns the day of the year of d, 1-365, or 1-366 in a
// leap year.
func (d Date) OrdinalDay() int {
	return int(d) - daysBeforeYear(d.Year())
}

// Quarter returns the quarter containing d, 1-4.
func (d Date) Quarter() int {
	return (int(d.Month()) + 2) / 3
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return Weekday(weekdayNum(int(d)))
}

// WeekYear returns the ISO8601 week-numbering year containing d, that is,
// the calendar year containing the Thursday of d's week. It differs from
// Year for up to a few days either side of Jan 1.
func (d Date) WeekYear() int {
	return d.Week().Year
}

// WeekNumber returns the ISO8601 week number of d within its week-year.
func (d Date) WeekNumber() int {
	return d.Week().Week
}

// Calendar returns d as a year, month and day of month.
func (d Date) Calendar() CalendarDate {
	year := yearForDay(int(d))
	day := int(d) - daysBeforeYear(year)
	table := daysInMonthForYear(year)
	month := 0
	for day > table[month] {
		day -= table[month]
		month++
	}
	return CalendarDate{Year: year, Month: Month(month + 1), Day: day}
}

// Ordinal returns d as a year and day of year.
func (d Date) Ordinal() OrdinalDate {
	year := yearForDay(int(d))
	return OrdinalDate{Year: year, Day: int(d) - daysBeforeYear(year)}
}

// Week returns d as an ISO8601 week date.
func (d Date) Week() WeekDate {
	wd := weekdayNum(int(d))
	year := yearForDay(int(d) + (4 - wd))
	week1Day1 := daysBeforeWeekYear(year) + 1
	return WeekDate{
		Year:    year,
		Week:    1 + (int(d)-week1Day1)/7,
		Weekday: Weekday(wd),
	}
}

// Clamp returns d constrained to the inclusive range [lo, hi].
func (d Date) Clamp(lo, hi Date) Date {
	return min(max(d, lo), hi)
}

// String returns d in the canonical ISO8601 extended calendar form
// YYYY-MM-DD. Years outside 0-9999 render with a sign and/or more digits
// and still round-trip via Parse.
func (d Date) String() string {
	cd := d.Calendar()
	return fmt.Sprintf("%s-%02d-%02d", padInt(cd.Year, 4), cd.Month, cd.Day)
}

// Parse sets d from an ISO8601 date string as per Parse.
func (d *Date) Parse(val string) error {
	parsed, err := Parse(val)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// ISO8601 form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any of the
// ISO8601 forms understood by Parse.
func (d *Date) UnmarshalText(data []byte) error {
	return d.Parse(string(data))
}
