// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import "cloudeng.io/calendar"

func newDate(year int, month calendar.Month, day int) calendar.Date {
	return calendar.CalendarDate{Year: year, Month: month, Day: day}.Date()
}

func mustParse(val string) calendar.Date {
	d, err := calendar.Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}
