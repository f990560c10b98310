package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/service"
)

type TripsHandler struct {
	tripService service.TripService
}

// NewTripsHandler creates a new trip packing handler
func NewTripsHandler(tripService service.TripService) *TripsHandler {
	return &TripsHandler{
		tripService: tripService,
	}
}

// PackingListRequest is the trip planner payload: one outfit per day
type PackingListRequest struct {
	Days []models.DayOutfit `json:"days"`
}

// PackingListResponse is the deduplicated packing list
type PackingListResponse struct {
	Items      []models.PackingItem `json:"items"`
	TotalItems int                  `json:"total_items"`
	TotalDays  int                  `json:"total_days"`
}

// BuildPackingList handles POST /api/v1/trips/packing-list
func (h *TripsHandler) BuildPackingList(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req PackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(), "Invalid JSON format"))
		return
	}

	items := h.tripService.BuildPackingList(c.Request.Context(), req.Days)
	if items == nil {
		items = []models.PackingItem{}
	}

	c.JSON(http.StatusOK, PackingListResponse{
		Items:      items,
		TotalItems: len(items),
		TotalDays:  len(req.Days),
	})
}
