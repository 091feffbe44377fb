package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAvailableMonths(t *testing.T) {
	t.Run("six months starting after today's month", func(t *testing.T) {
		months := AvailableMonths(date(2025, time.January, 15))

		require.Len(t, months, 6)
		assert.Equal(t, []string{
			"Febbraio 2025",
			"Marzo 2025",
			"Aprile 2025",
			"Maggio 2025",
			"Giugno 2025",
			"Luglio 2025",
		}, months)
	})

	t.Run("window crosses year boundary", func(t *testing.T) {
		months := AvailableMonths(date(2025, time.October, 3))

		require.Len(t, months, 6)
		assert.Equal(t, []string{
			"Novembre 2025",
			"Dicembre 2025",
			"Gennaio 2026",
			"Febbraio 2026",
			"Marzo 2026",
			"Aprile 2026",
		}, months)
	})

	t.Run("end of month with fewer days ahead", func(t *testing.T) {
		// 31 января: нормализация по первым числам не должна перескочить февраль
		months := AvailableMonths(date(2025, time.January, 31))

		require.Len(t, months, 6)
		assert.Equal(t, "Febbraio 2025", months[0])
	})

	t.Run("no duplicates for any starting month", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			months := AvailableMonths(date(2025, month, 10))

			require.Len(t, months, 6)
			seen := make(map[string]bool, len(months))
			for _, m := range months {
				assert.False(t, seen[m], "duplicate label %s for start month %s", m, month)
				seen[m] = true
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		today := date(2025, time.June, 20)
		assert.Equal(t, AvailableMonths(today), AvailableMonths(today))
	})
}

func TestRecommendedMonth(t *testing.T) {
	tests := []struct {
		name   string
		expiry *time.Time
		want   *string
	}{
		{
			name:   "absent expiry",
			expiry: nil,
			want:   nil,
		},
		{
			name:   "two months before expiry",
			expiry: timePtr(date(2025, time.August, 1)),
			want:   strPtr("Giugno 2025"),
		},
		{
			name:   "january rolls back to previous year",
			expiry: timePtr(date(2025, time.January, 20)),
			want:   strPtr("Novembre 2024"),
		},
		{
			name:   "february rolls back to december",
			expiry: timePtr(date(2025, time.February, 5)),
			want:   strPtr("Dicembre 2024"),
		},
		{
			name:   "day 31 does not shift the label",
			expiry: timePtr(date(2025, time.May, 31)),
			want:   strPtr("Marzo 2025"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendedMonth(tt.expiry)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUrgentMonth(t *testing.T) {
	today := date(2025, time.January, 15)
	months := AvailableMonths(today)

	tests := []struct {
		name   string
		expiry *time.Time
		want   *string
	}{
		{
			name:   "absent expiry",
			expiry: nil,
			want:   nil,
		},
		{
			name:   "expiry next month is urgent",
			expiry: timePtr(date(2025, time.February, 1)),
			want:   strPtr("Febbraio 2025"),
		},
		{
			name:   "expiry exactly at threshold is urgent",
			expiry: timePtr(date(2025, time.March, 28)),
			want:   strPtr("Febbraio 2025"),
		},
		{
			name:   "expiry seven months away is not urgent",
			expiry: timePtr(date(2025, time.August, 1)),
			want:   nil,
		},
		{
			name:   "day of month is ignored at the threshold",
			expiry: timePtr(date(2025, time.March, 1)),
			want:   strPtr("Febbraio 2025"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UrgentMonth(today, tt.expiry, months)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty window yields absent", func(t *testing.T) {
		expiry := date(2025, time.February, 1)
		assert.Nil(t, UrgentMonth(today, &expiry, nil))
	})

	t.Run("urgent month is always the first window entry", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			now := date(2024, month, 12)
			window := AvailableMonths(now)
			expiry := now.AddDate(0, 1, 0)

			got := UrgentMonth(now, &expiry, window)
			require.NotNil(t, got, "month %s", month)
			assert.Equal(t, window[0], *got)
		}
	})
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Gennaio 2026", MonthLabel(date(2026, time.January, 1)))
	assert.Equal(t, "Dicembre 2025", MonthLabel(date(2025, time.December, 31)))
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func ExampleAvailableMonths() {
	months := AvailableMonths(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))
	fmt.Println(months[0])
	// Output: Febbraio 2025
}
