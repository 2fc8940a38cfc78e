package api

import (
	"net/http"

	"booking-calendar/internal/domain/reservation"
	resdto "booking-calendar/internal/handler/dto/response"
	"booking-calendar/internal/handler/middleware"
	"booking-calendar/internal/pkg/clock"
	"booking-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
	clock           clock.Clock
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries, clock clock.Clock) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries: calendarQueries,
		clock:           clock,
	}
}

// @Summary Weekly grid
// @Description Render the week as a 7x13 grid of day rows and slot cells
// @Tags calendar
// @Produce json
// @Param week query string false "Any date inside the week (YYYY-MM-DD); defaults to the current week"
// @Success 200 {object} resdto.GridResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/grid [get]
func (h *CalendarHandler) GetGrid(c *gin.Context) {
	weekOf := reservation.DateOf(h.clock.Now())
	if week := c.Query("week"); week != "" {
		d, err := parseQueryDate(week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		weekOf = d
	}

	view, err := h.calendarQueries.Grid(c.Request.Context(), weekOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGridView(view, middleware.IsEditor(c)))
}

func parseQueryDate(value string) (reservation.Date, error) {
	return reservation.ParseDate(value)
}
