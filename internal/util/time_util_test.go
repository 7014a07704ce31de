package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	t.Run("leap year start", func(t *testing.T) {
		start := NewDate(2024, 2, 29)

		require.Equal(t, NewDate(2024, 3, 29), AddMonths(start, 1))
		// Feb 29 + 12 months lands in a non-leap February
		require.Equal(t, NewDate(2025, 2, 28), AddMonths(start, 12))
		require.Equal(t, NewDate(2028, 2, 29), AddMonths(start, 48))
	})

	t.Run("end of month clamps", func(t *testing.T) {
		require.Equal(t, NewDate(2023, 2, 28), AddMonths(NewDate(2023, 1, 31), 1))
		require.Equal(t, NewDate(2023, 4, 30), AddMonths(NewDate(2023, 3, 31), 1))
	})

	t.Run("year carry", func(t *testing.T) {
		require.Equal(t, NewDate(2024, 1, 15), AddMonths(NewDate(2023, 11, 15), 2))
		require.Equal(t, NewDate(2026, 3, 1), AddMonths(NewDate(2023, 3, 1), 36))
	})

	t.Run("negative months", func(t *testing.T) {
		require.Equal(t, NewDate(2022, 12, 15), AddMonths(NewDate(2023, 1, 15), -1))
		require.Equal(t, NewDate(2022, 2, 28), AddMonths(NewDate(2023, 3, 31), -13))
	})

	t.Run("no drift over long horizons", func(t *testing.T) {
		start := NewDate(2020, 1, 1)
		stepped := start
		for i := 0; i < 120; i++ {
			stepped = AddMonths(stepped, 1)
		}
		require.Equal(t, AddMonths(start, 120), stepped)
		require.Equal(t, NewDate(2030, 1, 1), stepped)
	})
}

func TestDateLte(t *testing.T) {
	require.True(t, DateLte(NewDate(2023, 1, 1), NewDate(2023, 1, 2)))
	require.True(t, DateLte(NewDate(2023, 1, 1), NewDate(2023, 1, 1)))
	require.False(t, DateLte(NewDate(2023, 1, 2), NewDate(2023, 1, 1)))
}

func TestMonthKey(t *testing.T) {
	require.Equal(t, "2024-02", MonthKey(time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC)))
}
