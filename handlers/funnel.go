package handlers

import (
	"net/http"

	"moveflow/services/funnel"
	"moveflow/services/scheduling"
	"moveflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FunnelHandler exposes the booking wizard over HTTP.
type FunnelHandler struct {
	Controller *funnel.Controller
	Validator  *scheduling.Validator
}

// StartSessionHandler creates a fresh wizard session.
func (h *FunnelHandler) StartSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	session, err := h.Controller.StartSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to start funnel session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionHandler returns the current wizard state.
func (h *FunnelHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Controller.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateFieldHandler applies a single form field change to the draft.
func (h *FunnelHandler) UpdateFieldHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Controller.UpdateField(c.Request.Context(), sessionID, input.Field, input.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextStepHandler advances the wizard one step.
func (h *FunnelHandler) NextStepHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Controller.NextStep(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// PrevStepHandler moves the wizard one step back.
func (h *FunnelHandler) PrevStepHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Controller.PrevStep(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GotoStepHandler jumps to an arbitrary step, for edit-from-review links.
func (h *FunnelHandler) GotoStepHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Controller.GotoStep(c.Request.Context(), sessionID, input.Step)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ValidateStepHandler checks whether a step's required fields are filled and
// returns field errors for the ones that are not.
func (h *FunnelHandler) ValidateStepHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	valid, session, err := h.Controller.HandleStepValidation(c.Request.Context(), sessionID, input.Step)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":   valid,
		"errors":  session.Errors,
		"session": session,
	})
}

// EndSessionHandler discards a wizard session.
func (h *FunnelHandler) EndSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Controller.EndSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session ended"})
}

// CheckSlotHandler asks the upstream backend whether the drafted slot is
// bookable and folds the answer back into the session. Answers for inputs
// the visitor has since changed are dropped.
func (h *FunnelHandler) CheckSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	session, err := h.Controller.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return
	}
	draft := session.Draft
	if draft.ServiceID == "" || draft.DateTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service and date must be selected before checking availability"})
		return
	}

	result := h.Validator.CheckSlot(c.Request.Context(), draft.ServiceID, draft.DateTime, draft.Hours, string(draft.Pickup.BuildingType))

	updated, err := h.Controller.ApplySlotCheck(c.Request.Context(), sessionID, result)
	if err != nil {
		logger.Error("Failed to apply slot check", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  result.Status,
		"session": updated,
	})
}
