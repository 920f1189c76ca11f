// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns the number of days in the given year, 365 or 366.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// WeeksInYear returns the number of ISO8601 weeks in the given week-year,
// 52 or 53. A week-year has 53 weeks when Jan 1 falls on a Thursday, or on
// a Wednesday in a leap year.
func WeeksInYear(year int) int {
	jan1 := daysBeforeYear(year) + 1
	if wd := weekdayNum(jan1); wd == 4 || (wd == 3 && IsLeap(year)) {
		return 53
	}
	return 52
}

// floorDiv and floorMod round toward negative infinity, unlike the native
// operators which truncate toward zero. Dates before the epoch depend on this.
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

// daysBeforeYear returns the number of days strictly before Jan 1 of the
// given year.
func daysBeforeYear(year int) int {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// daysBeforeMonth returns the number of days in the given year strictly
// before the first of the given month.
func daysBeforeMonth(year int, month Month) int {
	if IsLeap(year) {
		return dayOfYearLeap[month-1]
	}
	return dayOfYear[month-1]
}

// weekdayNum returns the ISO8601 weekday number, Monday=1 through Sunday=7,
// of the given day count. Day 1 (0001-01-01) is a Monday.
func weekdayNum(d int) int {
	if n := floorMod(d, 7); n != 0 {
		return n
	}
	return 7
}

// daysBeforeWeekYear returns the day count immediately before the Monday of
// ISO week 1 of the given week-year. Week 1 is the week containing Jan 4.
func daysBeforeWeekYear(year int) int {
	jan4 := daysBeforeYear(year) + 4
	return jan4 - weekdayNum(jan4)
}

const (
	days400Years = 146097
	days100Years = 36524
	days4Years   = 1461
)

// yearForDay returns the calendar year containing the given day count.
// It runs in constant time by dividing out 400, 100, 4 and single year
// cycles. A remainder of zero after the final stage means the day is the
// last day of one of those cycles and belongs to the accumulated year
// rather than the one after it.
func yearForDay(d int) int {
	r := floorMod(d, days400Years)
	year := 400 * floorDiv(d, days400Years)
	year += 100 * (r / days100Years)
	r %= days100Years
	year += 4 * (r / days4Years)
	r %= days4Years
	year += r / 365
	if r%365 == 0 {
		return year
	}
	return year + 1
}
