package converter

import (
	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

func ReservationToRecord(r *reservation.Reservation) filestore.Record {
	rec := filestore.Record{
		ID:         r.ID().String(),
		ClientName: r.ClientName(),
		Date:       r.Date().String(),
		StartTime:  r.Slots().Start().String(),
		EndTime:    r.Slots().End().String(),
		Platform:   r.Platform().String(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if p := r.Price(); p != nil {
		amount := p.Amount()
		rec.Price = &amount
	}
	return rec
}

// RecordToReservation rebuilds a domain reservation from its wire
// shape. Field values must still be members of the fixed label and
// enum sets; anything else is rejected before reaching the store.
func RecordToReservation(rec filestore.Record) (*reservation.Reservation, error) {
	// Hand-edited import files may omit ids; generate one rather than
	// rejecting the record.
	id := uuid.New()
	if rec.ID != "" {
		parsed, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, errs.Wrap(err, "invalid reservation id")
		}
		id = parsed
	}

	date, err := reservation.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}

	slots, err := reservation.NewSlotRange(rec.StartTime, rec.EndTime)
	if err != nil {
		return nil, err
	}

	platform, err := reservation.NewPlatform(rec.Platform)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	var price *reservation.Price
	if rec.Price != nil {
		p, err := reservation.NewPrice(*rec.Price)
		if err != nil {
			return nil, err
		}
		price = &p
	}

	if rec.ClientName == "" {
		return nil, reservation.ErrEmptyClientName
	}

	return reservation.Reconstruct(
		id,
		rec.ClientName,
		date,
		slots,
		platform,
		status,
		price,
		rec.CreatedAt,
		rec.UpdatedAt,
	), nil
}
