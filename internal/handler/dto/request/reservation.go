package request

import (
	"time"

	"booking-calendar/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientName string   `json:"clientName" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
	Platform   string   `json:"platform" binding:"required"`
	Status     string   `json:"status" binding:"omitempty,oneof=pending confirmed canceled"`
	Price      *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (r CreateReservationRequest) ToDomain(now time.Time) (*reservation.Reservation, error) {
	fields, err := parseReservationFields(r.Date, r.StartTime, r.EndTime, r.Platform, r.Status, r.Price)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(
		r.ClientName, fields.date, fields.slots, fields.platform, fields.status, fields.price, now,
	)
}

// UpdateReservationRequest replaces every field of the record wholesale;
// there is no partial patch.
type UpdateReservationRequest struct {
	ClientName string   `json:"clientName" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
	Platform   string   `json:"platform" binding:"required"`
	Status     string   `json:"status" binding:"omitempty,oneof=pending confirmed canceled"`
	Price      *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (r UpdateReservationRequest) ToDomain(prev *reservation.Reservation, now time.Time) (*reservation.Reservation, error) {
	fields, err := parseReservationFields(r.Date, r.StartTime, r.EndTime, r.Platform, r.Status, r.Price)
	if err != nil {
		return nil, err
	}
	return reservation.Revise(
		prev, r.ClientName, fields.date, fields.slots, fields.platform, fields.status, fields.price, now,
	)
}

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type reservationFields struct {
	date     reservation.Date
	slots    reservation.SlotRange
	platform reservation.Platform
	status   reservation.Status
	price    *reservation.Price
}

func parseReservationFields(date, start, end, platform, status string, price *float64) (reservationFields, error) {
	var f reservationFields
	var err error

	if f.date, err = reservation.ParseDate(date); err != nil {
		return f, err
	}
	if f.slots, err = reservation.NewSlotRange(start, end); err != nil {
		return f, err
	}
	if f.platform, err = reservation.NewPlatform(platform); err != nil {
		return f, err
	}
	if f.status, err = reservation.NewStatus(status); err != nil {
		return f, err
	}
	if price != nil {
		p, perr := reservation.NewPrice(*price)
		if perr != nil {
			return f, perr
		}
		f.price = &p
	}
	return f, nil
}
