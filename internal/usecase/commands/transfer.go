package commands

import (
	"context"
	"encoding/json"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra/converter"
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/pkg/errs"
)

// Import replaces the whole collection with the uploaded document. The
// payload must be a JSON array of reservation records; anything else
// aborts before any mutation, leaving the existing collection
// untouched. Records are not conflict-checked: import trusts its
// source.
func (c *reservationCommandsImpl) Import(ctx context.Context, payload []byte) (int, error) {
	var records []filestore.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return 0, errs.Mark(err, errs.ErrImportFormat)
	}

	rs := make([]*reservation.Reservation, len(records))
	for i, rec := range records {
		r, err := converter.RecordToReservation(rec)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrImportFormat)
		}
		rs[i] = r
	}

	if err := c.repo.ReplaceAll(ctx, rs); err != nil {
		return 0, errs.Mark(err, errs.ErrPersistence)
	}
	return len(rs), nil
}
