// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidISO8601Date is returned by Parse for input that does not match
// the ISO8601 date grammar at all. No further detail is available for
// syntactic failures.
var ErrInvalidISO8601Date = errors.New("invalid ISO8601 date")

// ErrDateOutOfRange is matched, via errors.Is, by every validation error
// returned by the strict constructors: CalendarDateError, OrdinalDateError
// and WeekDateError.
var ErrDateOutOfRange = errors.New("date out of range")

// CalendarDateError is returned by FromCalendar when the month or day of
// month is out of range for the year. It records the offending values
// verbatim.
type CalendarDateError struct {
	Year  int
	Month Month
	Day   int
}

func (e *CalendarDateError) Error() string {
	return fmt.Sprintf("invalid calendar date (%d, %d, %d)", e.Year, int(e.Month), e.Day)
}

func (e *CalendarDateError) Is(target error) bool {
	return target == ErrDateOutOfRange
}

// OrdinalDateError is returned by FromOrdinal when the day of year is out
// of range for the year. It records the offending values verbatim.
type OrdinalDateError struct {
	Year int
	Day  int
}

func (e *OrdinalDateError) Error() string {
	return fmt.Sprintf("invalid ordinal date (%d, %d)", e.Year, e.Day)
}

func (e *OrdinalDateError) Is(target error) bool {
	return target == ErrDateOutOfRange
}

// WeekDateError is returned by FromWeek when the week number or weekday is
// out of range for the week-year. It records the offending values verbatim.
type WeekDateError struct {
	Year    int
	Week    int
	Weekday Weekday
}

func (e *WeekDateError) Error() string {
	return fmt.Sprintf("invalid week date (%d, %d, %d)", e.Year, e.Week, int(e.Weekday))
}

func (e *WeekDateError) Is(target error) bool {
	return target == ErrDateOutOfRange
}
