//go:build unit

package builder

import (
	"time"

	"booking-calendar/internal/domain/reservation"
	reqdto "booking-calendar/internal/handler/dto/request"
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ClientName string
	Date       string
	StartTime  string
	EndTime    string
	Platform   string
	Status     string
	Price      *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ClientName: "Ann",
		Date:       "2024-06-03", // a Monday
		StartTime:  "14:00",
		EndTime:    "16:00",
		Platform:   "facebook",
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Clone returns an independent copy so a test can derive variants from
// a shared baseline.
func (b *ReservationBuilder) Clone() *ReservationBuilder {
	clone := &ReservationBuilder{}
	if err := copier.Copy(clone, b); err != nil {
		panic("reservation builder clone failed: " + err.Error())
	}
	clone.ID = uuid.New()
	return clone
}

func (b *ReservationBuilder) WithPrice(amount float64) *ReservationBuilder {
	b.Price = &amount
	return b
}

func (b *ReservationBuilder) WithTimes(date, start, end string) *ReservationBuilder {
	b.Date = date
	b.StartTime = start
	b.EndTime = end
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return b.BuildCreateRequestDTO().ToDomain(b.CreatedAt)
}

// BuildReconstructed bypasses creation-time validation and keeps the
// builder's id, mirroring a record loaded from the store.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	date, err := reservation.ParseDate(b.Date)
	if err != nil {
		panic("reservation builder: " + err.Error())
	}
	slots, err := reservation.NewSlotRange(b.StartTime, b.EndTime)
	if err != nil {
		panic("reservation builder: " + err.Error())
	}

	var price *reservation.Price
	if b.Price != nil {
		p, perr := reservation.NewPrice(*b.Price)
		if perr != nil {
			panic("reservation builder: " + perr.Error())
		}
		price = &p
	}

	return reservation.Reconstruct(
		b.ID,
		b.ClientName,
		date,
		slots,
		reservation.Platform(b.Platform),
		reservation.Status(b.Status),
		price,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientName: b.ClientName,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Platform:   b.Platform,
		Status:     b.Status,
		Price:      b.Price,
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	var req reqdto.UpdateReservationRequest
	if err := copier.Copy(&req, b.BuildCreateRequestDTO()); err != nil {
		panic("reservation builder update dto failed: " + err.Error())
	}
	return req
}

func (b *ReservationBuilder) BuildRecord() filestore.Record {
	return filestore.Record{
		ID:         b.ID.String(),
		ClientName: b.ClientName,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Platform:   b.Platform,
		Status:     b.Status,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		ClientName: b.ClientName,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Platform:   b.Platform,
		Status:     b.Status,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
