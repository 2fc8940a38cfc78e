//go:build unit

package calendar_test

import (
	"testing"

	"booking-calendar/internal/domain/calendar"
	"booking-calendar/internal/domain/reservation"
	"booking-calendar/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) reservation.Date {
	t.Helper()
	d, err := reservation.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestDayOf(t *testing.T) {
	cases := []struct {
		date string
		day  calendar.Day
	}{
		{date: "2024-06-03", day: calendar.Monday},
		{date: "2024-06-04", day: calendar.Tuesday},
		{date: "2024-06-05", day: calendar.Wednesday},
		{date: "2024-06-06", day: calendar.Thursday},
		{date: "2024-06-07", day: calendar.Friday},
		{date: "2024-06-08", day: calendar.Saturday},
		{date: "2024-06-09", day: calendar.Sunday},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.day, calendar.DayOf(mustDate(t, tc.date)), "date %s", tc.date)
	}
}

func TestDays(t *testing.T) {
	days := calendar.Days()
	require.Len(t, days, 7)
	assert.Equal(t, calendar.Monday, days[0])
	assert.Equal(t, calendar.Sunday, days[6])
}

func TestColorOf(t *testing.T) {
	// Each weekday carries its own fixed hex color.
	seen := make(map[string]calendar.Day)
	for _, day := range calendar.Days() {
		color := calendar.ColorOf(day)
		require.NotEmpty(t, color, "day %s", day)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, color)
		_, dup := seen[color]
		assert.False(t, dup, "color %s reused by %s", color, day)
		seen[color] = day
	}
	assert.Equal(t, "#fde047", calendar.ColorOf(calendar.Monday))
	assert.Equal(t, "#fca5a5", calendar.ColorOf(calendar.Sunday))
}

func TestWeekOf(t *testing.T) {
	t.Run("monday through sunday bounds", func(t *testing.T) {
		// Every day of the week resolves to the same bounds.
		for i := 0; i < 7; i++ {
			week := calendar.WeekOf(mustDate(t, "2024-06-03").AddDays(i))
			assert.Equal(t, "2024-06-03", week.Start().String())
			assert.Equal(t, "2024-06-09", week.End().String())
		}
	})

	t.Run("sunday belongs to the week it closes", func(t *testing.T) {
		week := calendar.WeekOf(mustDate(t, "2024-06-09"))
		assert.Equal(t, "2024-06-03", week.Start().String())
	})

	t.Run("contains is boundary inclusive", func(t *testing.T) {
		week := calendar.WeekOf(mustDate(t, "2024-06-05"))
		assert.True(t, week.Contains(mustDate(t, "2024-06-03")))
		assert.True(t, week.Contains(mustDate(t, "2024-06-09")))
		assert.False(t, week.Contains(mustDate(t, "2024-06-02")))
		assert.False(t, week.Contains(mustDate(t, "2024-06-10")))
	})

	t.Run("week spanning a month boundary", func(t *testing.T) {
		week := calendar.WeekOf(mustDate(t, "2024-07-01"))
		assert.Equal(t, "2024-07-01", week.Start().String())
		assert.Equal(t, "2024-07-07", week.End().String())

		prev := calendar.WeekOf(mustDate(t, "2024-06-30"))
		assert.Equal(t, "2024-06-24", prev.Start().String())
	})
}

func TestFilters(t *testing.T) {
	inWeek := builder.NewReservationBuilder().WithTimes("2024-06-03", "14:00", "16:00").BuildReconstructed()
	endOfWeek := builder.NewReservationBuilder().WithTimes("2024-06-09", "20:00", "22:00").BuildReconstructed()
	nextWeek := builder.NewReservationBuilder().WithTimes("2024-06-10", "14:00", "16:00").BuildReconstructed()
	all := []*reservation.Reservation{inWeek, endOfWeek, nextWeek}

	t.Run("day filter keeps exact matches only", func(t *testing.T) {
		got := calendar.FilterDay(all, mustDate(t, "2024-06-03"))
		require.Len(t, got, 1)
		assert.Equal(t, inWeek.ID(), got[0].ID())

		assert.Empty(t, calendar.FilterDay(all, mustDate(t, "2024-06-04")))
	})

	t.Run("week filter is boundary inclusive", func(t *testing.T) {
		got := calendar.FilterWeek(all, calendar.WeekOf(mustDate(t, "2024-06-05")))
		require.Len(t, got, 2)
		assert.Equal(t, inWeek.ID(), got[0].ID())
		assert.Equal(t, endOfWeek.ID(), got[1].ID())
	})

	t.Run("zero week returns the full collection", func(t *testing.T) {
		got := calendar.FilterWeek(all, calendar.Week{})
		assert.Len(t, got, 3)
	})
}
