package calendar

import "booking-calendar/internal/domain/reservation"

// Cell is one (day, slot) position in the grid. At most one reservation
// occupies a cell; overlap prevention happens upstream, the mapper only
// places what was admitted.
type Cell struct {
	Slot        reservation.Slot
	Reservation *reservation.Reservation
	First       bool
	Last        bool
}

func (c Cell) Occupied() bool {
	return c.Reservation != nil
}

// Row is one weekday of the grid with its header color.
type Row struct {
	Day   Day
	Color string
	Cells []Cell
}

type Grid struct {
	Rows []Row
}

// BuildGrid places each reservation into its day row, occupying every
// cell from its start slot to its end slot inclusive. The start cell is
// flagged First (it carries the detail block when rendered) and the end
// cell Last.
func BuildGrid(rs []*reservation.Reservation) Grid {
	slots := reservation.Slots()

	rows := make([]Row, len(dayLabels))
	for i, day := range dayLabels {
		cells := make([]Cell, len(slots))
		for j, slot := range slots {
			cells[j] = Cell{Slot: slot}
		}
		rows[i] = Row{Day: day, Color: dayColors[day], Cells: cells}
	}

	for _, r := range rs {
		row := &rows[mondayIndex(r.Date().Weekday())]
		start := r.Slots().Start().Index()
		end := r.Slots().End().Index()
		for j := start; j <= end; j++ {
			row.Cells[j].Reservation = r
			row.Cells[j].First = j == start
			row.Cells[j].Last = j == end
		}
	}

	return Grid{Rows: rows}
}
