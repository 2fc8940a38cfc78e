package queries

import (
	"context"

	"booking-calendar/internal/domain/calendar"
	"booking-calendar/internal/domain/reservation"
)

// StatsView is the dashboard read model: counts by platform, status and
// weekday, plus revenue over the reservations that carry a price.
type StatsView struct {
	Total            int            `json:"total"`
	ByPlatform       map[string]int `json:"byPlatform"`
	ByStatus         map[string]int `json:"byStatus"`
	ByWeekday        map[string]int `json:"byWeekday"`
	PricedCount      int            `json:"pricedCount"`
	Revenue          float64        `json:"revenue"`
	ConfirmedRevenue float64        `json:"confirmedRevenue"`
}

type StatsQueries interface {
	Stats(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	readStore ReservationReadStore
}

func NewStatsQueries(readStore ReservationReadStore) StatsQueries {
	return &statsQueriesImpl{readStore: readStore}
}

func (q *statsQueriesImpl) Stats(ctx context.Context) (*StatsView, error) {
	rs := q.readStore.All(ctx)

	view := &StatsView{
		Total:      len(rs),
		ByPlatform: make(map[string]int),
		ByStatus:   make(map[string]int),
		ByWeekday:  make(map[string]int),
	}

	for _, r := range rs {
		view.ByPlatform[r.Platform().String()]++
		view.ByStatus[r.Status().String()]++
		view.ByWeekday[string(calendar.DayOf(r.Date()))]++

		if p := r.Price(); p != nil {
			view.PricedCount++
			view.Revenue += p.Amount()
			if r.Status() == reservation.StatusConfirmed {
				view.ConfirmedRevenue += p.Amount()
			}
		}
	}

	return view, nil
}
