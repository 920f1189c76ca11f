// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"context"
	"time"
)

// Clock supplies the current instant and the UTC offset in effect at that
// instant. It is the only external collaborator of this package; every
// other operation is a pure function.
type Clock interface {
	Now(ctx context.Context) (instant time.Time, utcOffsetSeconds int, err error)
}

// SystemClock is a Clock backed by the process clock and its local time
// zone.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now(_ context.Context) (time.Time, int, error) {
	now := time.Now()
	_, offset := now.Zone()
	return now, offset, nil
}

// Initialized via the ordinal form since package variables are assigned
// before init() populates the per-month tables.
var unixEpoch = OrdinalDate{Year: 1970, Day: 1}.Date()

// Today returns the current date according to the clock. The reported UTC
// offset is applied to the instant and the result truncated to a day
// boundary; sub-day precision is discarded, never interpreted.
func Today(ctx context.Context, clock Clock) (Date, error) {
	instant, offset, err := clock.Now(ctx)
	if err != nil {
		return 0, err
	}
	secs := instant.Unix() + int64(offset)
	days := secs / 86400
	if secs%86400 != 0 && secs < 0 {
		days--
	}
	return unixEpoch + Date(days), nil
}
