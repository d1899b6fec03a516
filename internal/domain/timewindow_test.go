package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	w, err := ParseTimeWindow("")
	require.NoError(t, err)
	require.Equal(t, WindowAll, w)

	for _, raw := range []string{"all", "today", "this-week", "this-month"} {
		w, err := ParseTimeWindow(raw)
		require.NoError(t, err)
		require.Equal(t, TimeWindow(raw), w)
	}

	_, err = ParseTimeWindow("yesterday")
	require.Error(t, err)
}

func TestTimeWindow_AllIsIdentity(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	for _, createdAt := range []time.Time{
		now,
		now.AddDate(-10, 0, 0),
		now.Add(48 * time.Hour),
	} {
		require.True(t, WindowAll.Contains(now, createdAt))
	}
}

func TestTimeWindow_Today(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	require.True(t, WindowToday.Contains(now, now.Add(-11*time.Hour)))
	require.True(t, WindowToday.Contains(now, now.Add(11*time.Hour)))

	// Yesterday evening is outside "today" even though it is within 24h.
	require.False(t, WindowToday.Contains(now, now.Add(-13*time.Hour)))
	require.False(t, WindowToday.Contains(now, now.AddDate(0, 0, -1)))
}

func TestTimeWindow_RollingCutoffs(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	require.True(t, WindowThisWeek.Contains(now, now.Add(-6*24*time.Hour)))
	require.False(t, WindowThisWeek.Contains(now, now.Add(-8*24*time.Hour)))

	require.True(t, WindowThisMonth.Contains(now, now.Add(-29*24*time.Hour)))
	require.False(t, WindowThisMonth.Contains(now, now.Add(-31*24*time.Hour)))

	// The month window is a fixed 30 days, so a record from the 1st of the
	// current calendar month can fall outside it.
	startOfMonth := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	longMonthNow := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)
	require.False(t, WindowThisMonth.Contains(longMonthNow, startOfMonth))
}

func TestTimeWindow_SupersetOrdering(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	samples := []time.Time{
		now.Add(-1 * time.Hour),
		now.Add(-36 * time.Hour),
		now.Add(-6 * 24 * time.Hour),
		now.Add(-20 * 24 * time.Hour),
		now.Add(-40 * 24 * time.Hour),
	}

	for _, createdAt := range samples {
		if WindowToday.Contains(now, createdAt) {
			require.True(t, WindowThisWeek.Contains(now, createdAt))
		}
		if WindowThisWeek.Contains(now, createdAt) {
			require.True(t, WindowThisMonth.Contains(now, createdAt))
		}
		if WindowThisMonth.Contains(now, createdAt) {
			require.True(t, WindowAll.Contains(now, createdAt))
		}
	}
}
