package response

import (
	"booking-calendar/internal/usecase/queries"
)

type GridCellResponse struct {
	Slot        string             `json:"slot"`
	Reservation *GridBlockResponse `json:"reservation,omitempty"`
	First       bool               `json:"first,omitempty"`
	Last        bool               `json:"last,omitempty"`
}

type GridBlockResponse struct {
	ID         string   `json:"id"`
	ClientName string   `json:"clientName"`
	Date       string   `json:"date"`
	TimeRange  string   `json:"timeRange"`
	Platform   string   `json:"platform"`
	Status     string   `json:"status"`
	Price      *float64 `json:"price,omitempty"`
}

type GridRowResponse struct {
	Day   string             `json:"day"`
	Color string             `json:"color"`
	Cells []GridCellResponse `json:"cells"`
}

type GridResponse struct {
	WeekStart string            `json:"weekStart"`
	WeekEnd   string            `json:"weekEnd"`
	Slots     []string          `json:"slots"`
	Rows      []GridRowResponse `json:"rows"`
}

func FromGridView(v *queries.GridView, includePrice bool) *GridResponse {
	rows := make([]GridRowResponse, len(v.Rows))
	for i, row := range v.Rows {
		cells := make([]GridCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cr := GridCellResponse{
				Slot:  cell.Slot,
				First: cell.First,
				Last:  cell.Last,
			}
			if cell.Reservation != nil {
				block := &GridBlockResponse{
					ID:         cell.Reservation.ID,
					ClientName: cell.Reservation.ClientName,
					Date:       cell.Reservation.Date,
					TimeRange:  cell.Reservation.TimeRange,
					Platform:   cell.Reservation.Platform,
					Status:     cell.Reservation.Status,
				}
				if includePrice {
					block.Price = cell.Reservation.Price
				}
				cr.Reservation = block
			}
			cells[j] = cr
		}
		rows[i] = GridRowResponse{Day: row.Day, Color: row.Color, Cells: cells}
	}

	return &GridResponse{
		WeekStart: v.WeekStart,
		WeekEnd:   v.WeekEnd,
		Slots:     v.Slots,
		Rows:      rows,
	}
}
