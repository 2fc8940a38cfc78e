//go:build unit

package converter_test

import (
	"testing"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra/converter"
	"booking-calendar/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRoundTrip(t *testing.T) {
	want := builder.NewReservationBuilder().WithPrice(1200).BuildRecord()

	r, err := converter.RecordToReservation(want)
	require.NoError(t, err)
	got := converter.ReservationToRecord(r)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordToReservation(t *testing.T) {
	t.Run("missing id gets generated", func(t *testing.T) {
		rec := builder.NewReservationBuilder().BuildRecord()
		rec.ID = ""

		r, err := converter.RecordToReservation(rec)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		rec := builder.NewReservationBuilder().BuildRecord()
		rec.ID = "not-a-uuid"

		_, err := converter.RecordToReservation(rec)
		assert.Error(t, err)
	})

	t.Run("field errors surface the domain sentinel", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			errIs  error
		}{
			{
				name:   "bad date",
				mutate: func(b *builder.ReservationBuilder) { b.Date = "03-06-2024" },
				errIs:  reservation.ErrInvalidDate,
			},
			{
				name:   "bad slot label",
				mutate: func(b *builder.ReservationBuilder) { b.StartTime = "13:30" },
				errIs:  reservation.ErrInvalidSlot,
			},
			{
				name:   "inverted range",
				mutate: func(b *builder.ReservationBuilder) { b.StartTime, b.EndTime = "18:00", "16:00" },
				errIs:  reservation.ErrInvalidSlotRange,
			},
			{
				name:   "bad platform",
				mutate: func(b *builder.ReservationBuilder) { b.Platform = "tiktok" },
				errIs:  reservation.ErrInvalidPlatform,
			},
			{
				name:   "bad status",
				mutate: func(b *builder.ReservationBuilder) { b.Status = "paused" },
				errIs:  reservation.ErrInvalidStatus,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ReservationBuilder) { b.WithPrice(-5) },
				errIs:  reservation.ErrNegativePrice,
			},
			{
				name:   "empty client name",
				mutate: func(b *builder.ReservationBuilder) { b.ClientName = "" },
				errIs:  reservation.ErrEmptyClientName,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewReservationBuilder()
				tc.mutate(b)
				_, err := converter.RecordToReservation(b.BuildRecord())
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("empty status defaults to pending", func(t *testing.T) {
		rec := builder.NewReservationBuilder().BuildRecord()
		rec.Status = ""

		r, err := converter.RecordToReservation(rec)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})
}
