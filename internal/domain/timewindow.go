package domain

import (
	"fmt"
	"time"
)

// TimeWindow selects which slice of submissions the admin browser shows.
type TimeWindow string

const (
	WindowAll       TimeWindow = "all"
	WindowToday     TimeWindow = "today"
	WindowThisWeek  TimeWindow = "this-week"
	WindowThisMonth TimeWindow = "this-month"
)

// ParseTimeWindow validates a window value, defaulting to WindowAll when blank.
func ParseTimeWindow(raw string) (TimeWindow, error) {
	if raw == "" {
		return WindowAll, nil
	}
	switch TimeWindow(raw) {
	case WindowAll, WindowToday, WindowThisWeek, WindowThisMonth:
		return TimeWindow(raw), nil
	default:
		return WindowAll, fmt.Errorf("unknown time window %q", raw)
	}
}

// Contains reports whether a record created at the given instant falls inside
// the window, evaluated against now. "today" compares calendar days in now's
// location; "this-week" and "this-month" are rolling 7-day and 30-day cutoffs.
// The 30-day month window intentionally does not align to calendar months.
func (w TimeWindow) Contains(now, createdAt time.Time) bool {
	switch w {
	case WindowToday:
		y1, m1, d1 := now.Date()
		y2, m2, d2 := createdAt.In(now.Location()).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowThisWeek:
		return !createdAt.Before(now.Add(-7 * 24 * time.Hour))
	case WindowThisMonth:
		return !createdAt.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}
