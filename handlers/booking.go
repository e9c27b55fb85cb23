package handlers

import (
	"net/http"

	"moveflow/services/booking"
	"moveflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes submission and post-submission lookups.
type BookingHandler struct {
	Orchestrator booking.Orchestrator
	API          booking.BookingAPI
}

// SubmitHandler turns a completed wizard session into an upstream booking
// plus a payment redirect.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	result, err := h.Orchestrator.Submit(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Submission failed", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed, please try again"})
		return
	}

	switch {
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusUnprocessableEntity, result)
	case !result.Success && len(result.Alternatives) > 0:
		c.JSON(http.StatusConflict, result)
	case !result.Success:
		c.JSON(http.StatusBadGateway, result)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// GetBookingHandler looks the booking up upstream, waiting out replication
// lag before giving up.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	bk, err := h.Orchestrator.AwaitBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// AlternativesHandler lists other start times for a service on a date.
func (h *BookingHandler) AlternativesHandler(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameters: serviceId, date"})
		return
	}

	slots, err := h.API.ListAvailableTimes(c.Request.Context(), serviceID, date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "availability is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alternatives": slots})
}
