package queries

import (
	"context"
	"sort"
	"time"

	"booking-calendar/internal/domain/calendar"
	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra"
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read model (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"clientName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Platform   string    `json:"platform"`
	Status     string    `json:"status"`
	Price      *float64  `json:"price,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ListFilter selects the active viewing mode: Day wins over Week, both
// unset returns the full collection.
type ListFilter struct {
	Day    *reservation.Date
	WeekOf *reservation.Date
}

type ReservationReadStore interface {
	All(ctx context.Context) []*reservation.Reservation
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Snapshot(ctx context.Context) []filestore.Record
}

type ReservationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter) ([]*ReservationView, error)
	Export(ctx context.Context) ([]filestore.Record, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return FromReservation(r), nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*ReservationView, error) {
	rs := q.readStore.All(ctx)

	switch {
	case filter.Day != nil:
		rs = calendar.FilterDay(rs, *filter.Day)
	case filter.WeekOf != nil:
		rs = calendar.FilterWeek(rs, calendar.WeekOf(*filter.WeekOf))
	}

	sortForDisplay(rs)

	views := make([]*ReservationView, len(rs))
	for i, r := range rs {
		views[i] = FromReservation(r)
	}
	return views, nil
}

// Export returns the full collection verbatim in wire form.
func (q *reservationQueriesImpl) Export(ctx context.Context) ([]filestore.Record, error) {
	return q.readStore.Snapshot(ctx), nil
}

// sortForDisplay orders by date, then by start label position.
func sortForDisplay(rs []*reservation.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].Date().Equal(rs[j].Date()) {
			return rs[i].Date().Before(rs[j].Date())
		}
		return rs[i].Slots().Start().Before(rs[j].Slots().Start())
	})
}

func FromReservation(r *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:         r.ID(),
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
		v.Price = &amount
	}
	return v
}
