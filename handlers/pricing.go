package handlers

import (
	"net/http"

	"moveflow/services/funnel"
	"moveflow/services/pricing"
	"moveflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler quotes the drafted move against the current rate tables.
type PricingHandler struct {
	Controller *funnel.Controller
	Rates      *pricing.Fetcher
}

// QuoteHandler recomputes the running total for a wizard session.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	session, err := h.Controller.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return
	}

	rates, err := h.Rates.Snapshot(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load rate tables", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pricing is temporarily unavailable"})
		return
	}

	quote := pricing.Calculate(&session.Draft, rates)
	c.JSON(http.StatusOK, quote)
}

// MoverCountsHandler lists the crew sizes the active rate tables can price.
func (h *PricingHandler) MoverCountsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	rates, err := h.Rates.Snapshot(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load rate tables", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pricing is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mover_counts": pricing.AvailableMoverCounts(rates)})
}
