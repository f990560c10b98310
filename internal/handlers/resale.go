package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/service"
)

type ResaleHandler struct {
	resaleService service.ResaleService
}

// NewResaleHandler creates a new resale estimation handler
func NewResaleHandler(resaleService service.ResaleService) *ResaleHandler {
	return &ResaleHandler{
		resaleService: resaleService,
	}
}

// EstimateResale handles GET /api/v1/items/:id/resale-estimate
func (h *ResaleHandler) EstimateResale(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	itemID := c.Param("id")
	if _, err := uuid.Parse(itemID); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", itemID))
		return
	}

	estimate, err := h.resaleService.EstimateItem(c.Request.Context(), userID.(string), itemID)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if estimate == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "Item", itemID))
		return
	}

	c.JSON(http.StatusOK, estimate)
}
