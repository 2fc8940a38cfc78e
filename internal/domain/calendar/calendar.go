// Package calendar projects the reservation collection onto the weekly
// view: Monday-first week bounds, day/range filtering, and the fixed
// 7-day x 13-slot grid used for rendering and image export.
package calendar

import (
	"time"

	"booking-calendar/internal/domain/reservation"
)

// Day is a weekday short-name label, Monday first.
type Day string

const (
	Monday    Day = "MON"
	Tuesday   Day = "TUE"
	Wednesday Day = "WED"
	Thursday  Day = "THU"
	Friday    Day = "FRI"
	Saturday  Day = "SAT"
	Sunday    Day = "SUN"
)

var dayLabels = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// One fixed color per weekday, identical for the day-row header and the
// reservation blocks in that row.
var dayColors = map[Day]string{
	Monday:    "#fde047",
	Tuesday:   "#f9a8d4",
	Wednesday: "#86efac",
	Thursday:  "#fdba74",
	Friday:    "#93c5fd",
	Saturday:  "#d8b4fe",
	Sunday:    "#fca5a5",
}

func Days() []Day {
	out := make([]Day, len(dayLabels))
	copy(out, dayLabels[:])
	return out
}

// DayOf maps a calendar date to its weekday label.
func DayOf(d reservation.Date) Day {
	return dayLabels[mondayIndex(d.Weekday())]
}

func ColorOf(day Day) string {
	return dayColors[day]
}

// mondayIndex converts time.Weekday (Sunday = 0) to a Monday-first row
// index.
func mondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// Week is an inclusive Monday-through-Sunday date range. Monday is the
// first day of the week regardless of locale.
type Week struct {
	start reservation.Date
	end   reservation.Date
}

// WeekOf returns the week containing the given date.
func WeekOf(d reservation.Date) Week {
	start := d.AddDays(-mondayIndex(d.Weekday()))
	return Week{start: start, end: start.AddDays(6)}
}

func (w Week) Start() reservation.Date { return w.start }
func (w Week) End() reservation.Date   { return w.end }

func (w Week) IsZero() bool {
	return w == Week{}
}

func (w Week) Contains(d reservation.Date) bool {
	return !d.Before(w.start) && !d.After(w.end)
}

// FilterDay keeps reservations whose date equals the selected day.
func FilterDay(all []*reservation.Reservation, day reservation.Date) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(all))
	for _, r := range all {
		if r.Date().Equal(day) {
			out = append(out, r)
		}
	}
	return out
}

// FilterWeek keeps reservations whose date falls inside the week,
// boundaries inclusive. A zero week means no period has been selected
// yet and the full collection is returned.
func FilterWeek(all []*reservation.Reservation, week Week) []*reservation.Reservation {
	if week.IsZero() {
		return all
	}
	out := make([]*reservation.Reservation, 0, len(all))
	for _, r := range all {
		if week.Contains(r.Date()) {
			out = append(out, r)
		}
	}
	return out
}
