// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// CalendarDate represents a date as a year, month and day of month.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// Date returns the Date for the CalendarDate. Out of range months and days
// are silently clamped into range, eg. Feb 29 of a non-leap year becomes
// Feb 28 and a day of 0 becomes 1. Use FromCalendar to detect out of range
// values instead.
func (cd CalendarDate) Date() Date {
	month := min(max(cd.Month, January), December)
	day := min(max(cd.Day, 1), DaysInMonth(cd.Year, month))
	return Date(daysBeforeYear(cd.Year) + daysBeforeMonth(cd.Year, month) + day)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// OrdinalDate represents a date as a year and day of year.
type OrdinalDate struct {
	Year int
	Day  int
}

// Date returns the Date for the OrdinalDate. Out of range days are
// silently clamped into 1 through 365/366. Use FromOrdinal to detect out
// of range values instead.
func (od OrdinalDate) Date() Date {
	day := min(max(od.Day, 1), DaysInYear(od.Year))
	return Date(daysBeforeYear(od.Year) + day)
}

func (od OrdinalDate) String() string {
	return fmt.Sprintf("%04d-%03d", od.Year, od.Day)
}

// WeekDate represents a date as an ISO8601 week-numbering year, week
// number and weekday. The week-year is the calendar year containing the
// Thursday of the week and may differ from the calendar year of days close
// to Jan 1.
type WeekDate struct {
	Year    int
	Week    int
	Weekday Weekday
}

// Date returns the Date for the WeekDate. Out of range weeks and weekdays
// are silently clamped into range, eg. week 53 of a 52 week year becomes
// week 52. Use FromWeek to detect out of range values instead.
func (wd WeekDate) Date() Date {
	week := min(max(wd.Week, 1), WeeksInYear(wd.Year))
	weekday := min(max(wd.Weekday, Monday), Sunday)
	return Date(daysBeforeWeekYear(wd.Year) + (week-1)*7 + int(weekday))
}

func (wd WeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", wd.Year, wd.Week, wd.Weekday)
}

// FromCalendar returns the Date for the given year, month and day of
// month, or a CalendarDateError if the month or day is out of range.
func FromCalendar(year int, month Month, day int) (Date, error) {
	if month < January || month > December || day < 1 || day > DaysInMonth(year, month) {
		return 0, &CalendarDateError{Year: year, Month: month, Day: day}
	}
	return Date(daysBeforeYear(year) + daysBeforeMonth(year, month) + day), nil
}

// FromOrdinal returns the Date for the given year and day of year, or an
// OrdinalDateError if the day is out of range.
func FromOrdinal(year, day int) (Date, error) {
	if day < 1 || day > DaysInYear(year) {
		return 0, &OrdinalDateError{Year: year, Day: day}
	}
	return Date(daysBeforeYear(year) + day), nil
}

// FromWeek returns the Date for the given ISO8601 week-year, week number
// and weekday, or a WeekDateError if the week or weekday is out of range.
func FromWeek(year, week int, weekday Weekday) (Date, error) {
	if week < 1 || week > WeeksInYear(year) || weekday < Monday || weekday > Sunday {
		return 0, &WeekDateError{Year: year, Week: week, Weekday: weekday}
	}
	return Date(daysBeforeWeekYear(year) + (week-1)*7 + int(weekday)), nil
}
