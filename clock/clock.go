// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package clock derives the ISO day-of-week index the whole service
// keys on: 1=Monday .. 7=Sunday.
package clock

import "time"

// DayOf maps a point in time to its ISO day index: 1=Monday .. 7=Sunday.
// Go's time.Weekday runs 0=Sunday..6=Saturday, so Sunday is remapped to 7.
func DayOf(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return 7
	}
	return day
}

// Today returns the ISO day index for the current wall-clock time.
func Today() int {
	return DayOf(time.Now())
}
