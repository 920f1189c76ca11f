// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Month as an int, January is 1.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Lower cased copies of the name tables, folded once for the prefix
// matching in ParseMonth and ParseWeekday.
var monthNamesLower, weekdayNamesLower []string

func init() {
	monthNamesLower = lowered(monthNames)
	weekdayNamesLower = lowered(weekdayNames)
}

func lowered(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	return out
}

// String returns the full English name of the month.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Abbrev returns the three letter abbreviation of the month's name.
func (m Month) Abbrev() string {
	return m.String()[:3]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i, name := range monthNamesLower {
		if strings.HasPrefix(name, lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// Weekday as an int using the ISO8601 numbering, Monday is 1 and Sunday
// is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the full English name of the weekday.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// Abbrev returns the three letter abbreviation of the weekday's name.
func (w Weekday) Abbrev() string {
	return w.String()[:3]
}

// ParseNumericWeekday parses a numeric weekday value in the range 1-7,
// Monday being 1.
func ParseNumericWeekday(val string) (Weekday, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("invalid weekday: %d", n)
	}
	return Weekday(n), nil
}

// ParseWeekday parses a weekday name of the form "Mon" to "Sun" or any other
// longer prefixes of "Monday" to "Sunday" in either lower or upper case.
func ParseWeekday(val string) (Weekday, error) {
	lc := strings.ToLower(val)
	for i, name := range weekdayNamesLower {
		if strings.HasPrefix(name, lc) {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", val)
}

// Parse parses a weekday in either numeric or weekday name format.
func (w *Weekday) Parse(val string) error {
	if n, err := ParseNumericWeekday(val); err == nil {
		*w = n
		return nil
	}
	n, err := ParseWeekday(val)
	if err != nil {
		return err
	}
	*w = n
	return nil
}
