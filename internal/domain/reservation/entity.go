package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyClientName = errors.New("client name is required")

// Reservation is one booked time slot for a client on a specific date
// and platform.
type Reservation struct {
	id         uuid.UUID
	clientName string
	date       Date
	slots      SlotRange
	platform   Platform
	status     Status
	price      *Price
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	clientName string,
	date Date,
	slots SlotRange,
	platform Platform,
	status Status,
	price *Price,
	now time.Time,
) (*Reservation, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return nil, ErrEmptyClientName
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Reservation{
		id:         uuid.New(),
		clientName: name,
		date:       date,
		slots:      slots,
		platform:   platform,
		status:     status,
		price:      price,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Revise builds the edited form of prev: same identity and creation
// time, every other field replaced wholesale.
func Revise(
	prev *Reservation,
	clientName string,
	date Date,
	slots SlotRange,
	platform Platform,
	status Status,
	price *Price,
	now time.Time,
) (*Reservation, error) {
	revised, err := NewReservation(clientName, date, slots, platform, status, price, now)
	if err != nil {
		return nil, err
	}
	revised.id = prev.id
	revised.createdAt = prev.createdAt
	return revised, nil
}

// Reconstruct rebuilds a reservation from persisted state without
// re-running creation-time validation.
func Reconstruct(
	id uuid.UUID,
	clientName string,
	date Date,
	slots SlotRange,
	platform Platform,
	status Status,
	price *Price,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		clientName: clientName,
		date:       date,
		slots:      slots,
		platform:   platform,
		status:     status,
		price:      price,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) ID() uuid.UUID      { return r.id }
func (r *Reservation) ClientName() string { return r.clientName }
func (r *Reservation) Date() Date         { return r.date }
func (r *Reservation) Slots() SlotRange   { return r.slots }
func (r *Reservation) Platform() Platform { return r.platform }
func (r *Reservation) Status() Status     { return r.status }

// Price returns nil when no amount was recorded; nil is distinct from a
// zero price.
func (r *Reservation) Price() *Price {
	return r.price
}

func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
