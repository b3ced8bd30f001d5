package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BusinessHoursHandler struct {
	hoursCommands commands.BusinessHoursCommands
	hoursQueries  queries.BusinessHoursQueries
}

func NewBusinessHoursHandler(hoursCommands commands.BusinessHoursCommands, hoursQueries queries.BusinessHoursQueries) *BusinessHoursHandler {
	return &BusinessHoursHandler{
		hoursCommands: hoursCommands,
		hoursQueries:  hoursQueries,
	}
}

// @Summary Get weekly business hours
// @Tags business-hours
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WeekdayHoursResponse
// @Router /admin/business-hours [get]
func (h *BusinessHoursHandler) GetWeek(c *gin.Context) {
	views, err := h.hoursQueries.GetWeek(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekdayHoursViews(views))
}

// @Summary Replace weekly business hours
// @Tags business-hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceWeekRequest true "Full week of hours"
// @Success 200 {array} resdto.WeekdayHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/business-hours [put]
func (h *BusinessHoursHandler) ReplaceWeek(c *gin.Context) {
	var req reqdto.ReplaceWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	views, err := h.hoursCommands.ReplaceWeek(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidConfig):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid business hours configuration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekdayHoursViews(views))
}
