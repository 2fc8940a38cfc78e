package api

import (
	"errors"
	"io"
	"net/http"

	resdto "booking-calendar/internal/handler/dto/response"
	"booking-calendar/internal/handler/middleware"
	"booking-calendar/internal/pkg/errs"
	"booking-calendar/internal/usecase/commands"
	"booking-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the import body; the collection is a single JSON
// document and anything larger than this is not a plausible backup.
const maxImportBytes = 8 << 20

type TransferHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewTransferHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *TransferHandler {
	return &TransferHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Export reservations
// @Description Download the full collection as a JSON document
// @Tags transfer
// @Produce json
// @Success 200 {array} filestore.Record
// @Router /reservations/export [get]
func (h *TransferHandler) Export(c *gin.Context) {
	records, err := h.reservationQueries.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if !middleware.IsEditor(c) {
		for i := range records {
			records[i].Price = nil
		}
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.json"`)
	c.JSON(http.StatusOK, records)
}

// @Summary Import reservations
// @Description Replace the full collection with an uploaded JSON document
// @Tags transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	count, err := h.reservationCommands.Import(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrImportFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Import payload is not a valid reservation collection",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ImportResponse{Imported: count})
}
