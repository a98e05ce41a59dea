// Package admin serves the dashboard: aggregate figures and the full
// booking list. Catalog writes and booking status changes live with
// their own modules; this package only reads.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equiprent/internal/pkg/response"
)

type Handler struct {
	bookings BookingReader
}

func NewHandler(bookings BookingReader) *Handler {
	return &Handler{bookings: bookings}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/equipment/:id/stats", h.EquipmentStats)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.bookings.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) EquipmentStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return
	}

	stats, err := h.bookings.StatsForEquipment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
