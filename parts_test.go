// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestClampingConstructors(t *testing.T) {
	for _, tc := range []struct {
		cd   calendar.CalendarDate
		want calendar.Date
	}{
		{calendar.CalendarDate{2001, calendar.February, 29}, newDate(2001, calendar.February, 28)},
		{calendar.CalendarDate{2000, calendar.February, 30}, newDate(2000, calendar.February, 29)},
		{calendar.CalendarDate{2023, calendar.April, 31}, newDate(2023, calendar.April, 30)},
		{calendar.CalendarDate{2023, calendar.April, 0}, newDate(2023, calendar.April, 1)},
		{calendar.CalendarDate{2023, calendar.April, -5}, newDate(2023, calendar.April, 1)},
		{calendar.CalendarDate{2023, calendar.Month(13), 10}, newDate(2023, calendar.December, 10)},
		{calendar.CalendarDate{2023, calendar.Month(0), 10}, newDate(2023, calendar.January, 10)},
	} {
		if got, want := tc.cd.Date(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}

	for _, tc := range []struct {
		od   calendar.OrdinalDate
		want calendar.Date
	}{
		{calendar.OrdinalDate{2023, 366}, newDate(2023, calendar.December, 31)},
		{calendar.OrdinalDate{2024, 367}, newDate(2024, calendar.December, 31)},
		{calendar.OrdinalDate{2024, 366}, newDate(2024, calendar.December, 31)},
		{calendar.OrdinalDate{2023, 0}, newDate(2023, calendar.January, 1)},
	} {
		if got, want := tc.od.Date(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.od, got, want)
		}
	}

	for _, tc := range []struct {
		wd   calendar.WeekDate
		want calendar.Date
	}{
		// 2018 has 52 weeks, 2015 has 53.
		{calendar.WeekDate{2018, 53, calendar.Monday}, calendar.WeekDate{2018, 52, calendar.Monday}.Date()},
		{calendar.WeekDate{2015, 53, calendar.Monday}, mustParse("2015-W53-1")},
		{calendar.WeekDate{2018, 0, calendar.Monday}, calendar.WeekDate{2018, 1, calendar.Monday}.Date()},
		{calendar.WeekDate{2018, 1, calendar.Weekday(8)}, calendar.WeekDate{2018, 1, calendar.Sunday}.Date()},
		{calendar.WeekDate{2018, 1, calendar.Weekday(0)}, calendar.WeekDate{2018, 1, calendar.Monday}.Date()},
	} {
		if got, want := tc.wd.Date(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.wd, got, want)
		}
	}
}

func TestStrictConstructors(t *testing.T) {
	d, err := calendar.FromCalendar(2024, calendar.February, 29)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := d, newDate(2024, calendar.February, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := calendar.FromOrdinal(2024, 366); err != nil {
		t.Errorf("failed: %v", err)
	}
	if _, err := calendar.FromWeek(2015, 53, calendar.Sunday); err != nil {
		t.Errorf("failed: %v", err)
	}

	_, err = calendar.FromCalendar(2018, calendar.February, 29)
	var cerr *calendar.CalendarDateError
	if !errors.As(err, &cerr) {
		t.Fatalf("failed to return a CalendarDateError: %v", err)
	}
	if got, want := *cerr, (calendar.CalendarDateError{2018, calendar.February, 29}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := err.Error(), "invalid calendar date (2018, 2, 29)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, calendar.ErrDateOutOfRange) {
		t.Errorf("failed to match ErrDateOutOfRange")
	}

	_, err = calendar.FromOrdinal(2018, 366)
	var oerr *calendar.OrdinalDateError
	if !errors.As(err, &oerr) {
		t.Fatalf("failed to return an OrdinalDateError: %v", err)
	}
	if got, want := *oerr, (calendar.OrdinalDateError{2018, 366}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := err.Error(), "invalid ordinal date (2018, 366)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, calendar.ErrDateOutOfRange) {
		t.Errorf("failed to match ErrDateOutOfRange")
	}

	_, err = calendar.FromWeek(2018, 53, calendar.Monday)
	var werr *calendar.WeekDateError
	if !errors.As(err, &werr) {
		t.Fatalf("failed to return a WeekDateError: %v", err)
	}
	if got, want := *werr, (calendar.WeekDateError{2018, 53, calendar.Monday}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := err.Error(), "invalid week date (2018, 53, 1)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, calendar.ErrDateOutOfRange) {
		t.Errorf("failed to match ErrDateOutOfRange")
	}

	for _, tc := range []struct {
		year  int
		month calendar.Month
		day   int
	}{
		{2018, calendar.Month(0), 1},
		{2018, calendar.Month(13), 1},
		{2018, calendar.January, 0},
		{2018, calendar.January, 32},
		{2018, calendar.April, 31},
	} {
		if _, err := calendar.FromCalendar(tc.year, tc.month, tc.day); err == nil {
			t.Errorf("failed to return an error: %v %v %v", tc.year, tc.month, tc.day)
		}
	}
}

func TestPartStrings(t *testing.T) {
	if got, want := (calendar.CalendarDate{2018, calendar.September, 26}).String(), "2018-09-26"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := (calendar.OrdinalDate{2018, 26}).String(), "2018-026"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := (calendar.WeekDate{2018, 3, calendar.Wednesday}).String(), "2018-W03-3"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
