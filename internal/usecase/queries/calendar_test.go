//go:build unit

package queries_test

import (
	"context"
	"testing"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/usecase/queries"
	"booking-calendar/tests/common/builder"
	queriesmock "booking-calendar/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarGrid(t *testing.T) {
	mustDate := func(value string) reservation.Date {
		d, err := reservation.ParseDate(value)
		require.NoError(t, err)
		return d
	}

	newQueries := func(t *testing.T, all []*reservation.Reservation) queries.CalendarQueries {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().All(gomock.Any()).Return(all).Times(1)
		return queries.NewCalendarQueries(store)
	}

	t.Run("empty week", func(t *testing.T) {
		q := newQueries(t, nil)

		view, err := q.Grid(context.Background(), mustDate("2024-06-05"))
		require.NoError(t, err)

		assert.Equal(t, "2024-06-03", view.WeekStart)
		assert.Equal(t, "2024-06-09", view.WeekEnd)
		require.Len(t, view.Slots, 13)
		assert.Equal(t, "14:00", view.Slots[0])
		assert.Equal(t, "24:00", view.Slots[10])
		assert.Equal(t, "02:00", view.Slots[12])

		require.Len(t, view.Rows, 7)
		assert.Equal(t, "MON", view.Rows[0].Day)
		assert.Equal(t, "#fde047", view.Rows[0].Color)
		assert.Equal(t, "SUN", view.Rows[6].Day)
		for _, row := range view.Rows {
			require.Len(t, row.Cells, 13)
			for _, cell := range row.Cells {
				assert.Nil(t, cell.Reservation)
			}
		}
	})

	t.Run("booking fills its cells with the detail block", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithPrice(1200).
			WithTimes("2024-06-05", "16:00", "18:00").
			BuildReconstructed()
		q := newQueries(t, []*reservation.Reservation{r})

		view, err := q.Grid(context.Background(), mustDate("2024-06-03"))
		require.NoError(t, err)

		wed := view.Rows[2]
		require.Equal(t, "WED", wed.Day)

		first := wed.Cells[2]
		assert.True(t, first.First)
		require.NotNil(t, first.Reservation)
		assert.Equal(t, r.ID().String(), first.Reservation.ID)
		assert.Equal(t, "Ann", first.Reservation.ClientName)
		assert.Equal(t, "16:00 - 18:00", first.Reservation.TimeRange)
		require.NotNil(t, first.Reservation.Price)
		assert.Equal(t, 1200.0, *first.Reservation.Price)

		last := wed.Cells[4]
		assert.True(t, last.Last)
		require.NotNil(t, last.Reservation)

		assert.Nil(t, wed.Cells[5].Reservation)
	})

	t.Run("bookings outside the requested week are dropped", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithTimes("2024-06-10", "14:00", "16:00").BuildReconstructed()
		q := newQueries(t, []*reservation.Reservation{r})

		view, err := q.Grid(context.Background(), mustDate("2024-06-05"))
		require.NoError(t, err)

		for _, row := range view.Rows {
			for _, cell := range row.Cells {
				assert.Nil(t, cell.Reservation)
			}
		}
	})
}
