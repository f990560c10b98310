package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/apierror"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/service"
)

type SeasonalHandler struct {
	seasonalService service.SeasonalService
}

// NewSeasonalHandler creates a new seasonal report handler
func NewSeasonalHandler(seasonalService service.SeasonalService) *SeasonalHandler {
	return &SeasonalHandler{
		seasonalService: seasonalService,
	}
}

// GetReport handles GET /api/v1/analytics/seasonal
func (h *SeasonalHandler) GetReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	now := time.Now()

	season := models.Season(c.Query("season"))
	if season == "" {
		season = analytics.SeasonForMonth(int(now.Month()))
	}
	switch season {
	case models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter:
	default:
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "season", Message: "must be one of: spring, summer, fall, winter", Code: "invalid_value"},
		}))
		return
	}

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "year", Message: "must be a number", Code: "invalid_type"},
			}))
			return
		}
		year = parsed
	} else if season == models.SeasonWinter && now.Month() <= time.February {
		// January and February belong to the winter that started the
		// previous December
		year--
	}

	report, err := h.seasonalService.GetReport(c.Request.Context(), userID.(string), season, year)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTransitionAlert handles GET /api/v1/analytics/seasonal/transition
func (h *SeasonalHandler) GetTransitionAlert(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	alert := analytics.CheckTransitionAlert(time.Now())
	if alert == nil {
		c.JSON(http.StatusOK, gin.H{"alert": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}
