package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/service"
)

type PreferencesHandler struct {
	preferenceService service.PreferenceService
}

// NewPreferencesHandler creates a new analytics preferences handler
func NewPreferencesHandler(preferenceService service.PreferenceService) *PreferencesHandler {
	return &PreferencesHandler{
		preferenceService: preferenceService,
	}
}

// NeglectThresholdRequest is the payload for updating the threshold
type NeglectThresholdRequest struct {
	ThresholdDays int `json:"threshold_days"`
}

// GetNeglectThreshold handles GET /api/v1/preferences/neglect-threshold
func (h *PreferencesHandler) GetNeglectThreshold(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days, err := h.preferenceService.GetNeglectThreshold(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"threshold_days": days})
}

// SetNeglectThreshold handles PUT /api/v1/preferences/neglect-threshold
func (h *PreferencesHandler) SetNeglectThreshold(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req NeglectThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Invalid JSON format"))
		return
	}

	if err := analytics.ValidateNeglectThreshold(req.ThresholdDays); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "threshold_days", Message: err.Error(), Code: "out_of_range"},
		}))
		return
	}

	if err := h.preferenceService.SetNeglectThreshold(c.Request.Context(), userID.(string), req.ThresholdDays); err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"threshold_days": req.ThresholdDays})
}
