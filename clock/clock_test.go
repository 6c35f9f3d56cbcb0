package clock

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	// 2025-01-06 was a Monday
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"monday is 1", time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC), 1},
		{"tuesday is 2", time.Date(2025, time.January, 7, 12, 0, 0, 0, time.UTC), 2},
		{"wednesday is 3", time.Date(2025, time.January, 8, 12, 0, 0, 0, time.UTC), 3},
		{"thursday is 4", time.Date(2025, time.January, 9, 12, 0, 0, 0, time.UTC), 4},
		{"friday is 5", time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC), 5},
		{"saturday is 6", time.Date(2025, time.January, 11, 12, 0, 0, 0, time.UTC), 6},
		{"sunday is 7, not 0", time.Date(2025, time.January, 12, 12, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOf(tt.date); got != tt.expected {
				t.Errorf("DayOf(%s) = %d, expected %d", tt.date.Weekday(), got, tt.expected)
			}
		})
	}
}

func TestDayOfMidnightBoundaries(t *testing.T) {
	// First and last instant of a Sunday both map to 7
	start := time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 12, 23, 59, 59, 0, time.UTC)

	if got := DayOf(start); got != 7 {
		t.Errorf("sunday 00:00 = %d, expected 7", got)
	}
	if got := DayOf(end); got != 7 {
		t.Errorf("sunday 23:59 = %d, expected 7", got)
	}
}

func TestToday(t *testing.T) {
	day := Today()
	if day < 1 || day > 7 {
		t.Errorf("Today() = %d, expected a value in 1..7", day)
	}
	if day != DayOf(time.Now()) {
		t.Errorf("Today() disagrees with DayOf(time.Now())")
	}
}
