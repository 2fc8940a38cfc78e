package api

import (
	"net/http"

	"booking-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{
		statsQueries: statsQueries,
	}
}

// @Summary Stats dashboard
// @Description Aggregate counts and revenue over the full collection
// @Tags stats
// @Produce json
// @Success 200 {object} queries.StatsView
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	view, err := h.statsQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
