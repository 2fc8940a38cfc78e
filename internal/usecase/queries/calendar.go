package queries

import (
	"context"

	"booking-calendar/internal/domain/calendar"
	"booking-calendar/internal/domain/reservation"
)

// GridCellView is one (day, slot) cell: zero or one reservation plus
// first/last flags for border treatment in renderers.
type GridCellView struct {
	Slot        string         `json:"slot"`
	Reservation *GridBlockView `json:"reservation,omitempty"`
	First       bool           `json:"first,omitempty"`
	Last        bool           `json:"last,omitempty"`
}

// GridBlockView is the detail block rendered in a reservation's first
// cell.
type GridBlockView struct {
	ID         string   `json:"id"`
	ClientName string   `json:"clientName"`
	Date       string   `json:"date"`
	TimeRange  string   `json:"timeRange"`
	Platform   string   `json:"platform"`
	Status     string   `json:"status"`
	Price      *float64 `json:"price,omitempty"`
}

type GridRowView struct {
	Day   string         `json:"day"`
	Color string         `json:"color"`
	Cells []GridCellView `json:"cells"`
}

type GridView struct {
	WeekStart string        `json:"weekStart"`
	WeekEnd   string        `json:"weekEnd"`
	Slots     []string      `json:"slots"`
	Rows      []GridRowView `json:"rows"`
}

type CalendarQueries interface {
	Grid(ctx context.Context, weekOf reservation.Date) (*GridView, error)
}

type calendarQueriesImpl struct {
	readStore ReservationReadStore
}

func NewCalendarQueries(readStore ReservationReadStore) CalendarQueries {
	return &calendarQueriesImpl{readStore: readStore}
}

func (q *calendarQueriesImpl) Grid(ctx context.Context, weekOf reservation.Date) (*GridView, error) {
	week := calendar.WeekOf(weekOf)
	rs := calendar.FilterWeek(q.readStore.All(ctx), week)
	grid := calendar.BuildGrid(rs)

	slots := reservation.Slots()
	slotNames := make([]string, len(slots))
	for i, s := range slots {
		slotNames[i] = s.String()
	}

	rows := make([]GridRowView, len(grid.Rows))
	for i, row := range grid.Rows {
		cells := make([]GridCellView, len(row.Cells))
		for j, cell := range row.Cells {
			cv := GridCellView{Slot: cell.Slot.String()}
			if cell.Occupied() {
				cv.First = cell.First
				cv.Last = cell.Last
				cv.Reservation = blockFromReservation(cell.Reservation)
			}
			cells[j] = cv
		}
		rows[i] = GridRowView{
			Day:   string(row.Day),
			Color: row.Color,
			Cells: cells,
		}
	}

	return &GridView{
		WeekStart: week.Start().String(),
		WeekEnd:   week.End().String(),
		Slots:     slotNames,
		Rows:      rows,
	}, nil
}

func blockFromReservation(r *reservation.Reservation) *GridBlockView {
	b := &GridBlockView{
		ID:         r.ID().String(),
		ClientName: r.ClientName(),
		Date:       r.Date().String(),
		TimeRange:  r.Slots().String(),
		Platform:   r.Platform().String(),
		Status:     r.Status().String(),
	}
	if p := r.Price(); p != nil {
		amount := p.Amount()
		b.Price = &amount
	}
	return b
}
