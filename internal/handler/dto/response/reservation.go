package response

import (
	"time"

	"booking-calendar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
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

// FromReservationView converts a read model for the response body. The
// price is only disclosed to holders of an editor token.
func FromReservationView(v *queries.ReservationView, includePrice bool) *ReservationResponse {
	resp := &ReservationResponse{
		ID:         v.ID,
		ClientName: v.ClientName,
		Date:       v.Date,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Platform:   v.Platform,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if includePrice {
		resp.Price = v.Price
	}
	return resp
}

func FromReservationViews(views []*queries.ReservationView, includePrice bool) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v, includePrice)
	}
	return out
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
