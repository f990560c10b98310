package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetHealthScore handles GET /api/v1/analytics/health-score
func (h *AnalyticsHandler) GetHealthScore(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	score, err := h.analyticsService.GetHealthScore(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, score)
}

// GetBrands handles GET /api/v1/analytics/brands
func (h *AnalyticsHandler) GetBrands(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	category := c.Query("category")
	if category != "" && !validCategory(category) {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "category", Message: "must be a known category", Code: "invalid_value"},
		}))
		return
	}

	report, err := h.analyticsService.GetBrandReport(c.Request.Context(), userID.(string), category)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetHeatmap handles GET /api/v1/analytics/heatmap
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	view := analytics.View(c.DefaultQuery("view", string(analytics.ViewMonth)))
	switch view {
	case analytics.ViewMonth, analytics.ViewQuarter, analytics.ViewYear:
	default:
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "view", Message: "must be one of: month, quarter, year", Code: "invalid_value"},
		}))
		return
	}

	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(analytics.DateLayout, dateStr)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "date", Message: "must be a YYYY-MM-DD date", Code: "invalid_format"},
			}))
			return
		}
		ref = parsed
	}

	data, err := h.analyticsService.GetHeatmap(c.Request.Context(), userID.(string), view, ref)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetNeglect handles GET /api/v1/analytics/neglect
func (h *AnalyticsHandler) GetNeglect(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	report, err := h.analyticsService.GetNeglectReport(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}

func validCategory(category string) bool {
	for _, c := range models.AllCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}
