package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	loc                 *time.Location
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		loc:                 loc,
	}
}

// @Summary Get day availability
// @Description List bookable slot start times for a date. Pass either service_ids (comma-separated) or duration_minutes.
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_ids query string false "Comma-separated service IDs"
// @Param duration_minutes query int false "Explicit duration override"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service_ids",
		})
		return
	}

	var duration *int
	if raw := c.Query("duration_minutes"); raw != "" {
		d, convErr := strconv.Atoi(raw)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid duration_minutes",
			})
			return
		}
		duration = &d
	}

	view, err := h.availabilityQueries.GetDayAvailability(c.Request.Context(), day, serviceIDs, duration)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Provide service_ids or a positive duration_minutes",
			})
		case errs.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errs.Is(err, errs.ErrServiceInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Service is not bookable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func parseServiceIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
