package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/service"
)

type GapsHandler struct {
	gapService service.GapService
}

// NewGapsHandler creates a new gap analysis handler
func NewGapsHandler(gapService service.GapService) *GapsHandler {
	return &GapsHandler{
		gapService: gapService,
	}
}

// GetGaps handles GET /api/v1/analytics/gaps
func (h *GapsHandler) GetGaps(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	gender := c.Query("gender")

	force := false
	if forceStr := c.Query("force"); forceStr != "" {
		parsed, err := strconv.ParseBool(forceStr)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "force", Message: "must be a boolean value", Code: "invalid_type"},
			}))
			return
		}
		force = parsed
	}

	report, err := h.gapService.GetGaps(c.Request.Context(), userID.(string), gender, force)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}

// DismissGap handles POST /api/v1/analytics/gaps/:id/dismiss
func (h *GapsHandler) DismissGap(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	gapID := c.Param("id")
	if gapID == "" {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "id", Message: "is required", Code: "required"},
		}))
		return
	}

	report, err := h.gapService.DismissGap(c.Request.Context(), userID.(string), c.Query("gender"), gapID)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}
