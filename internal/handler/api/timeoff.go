package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeOffHandler struct {
	timeOffCommands commands.TimeOffCommands
	timeOffQueries  queries.TimeOffQueries
}

func NewTimeOffHandler(timeOffCommands commands.TimeOffCommands, timeOffQueries queries.TimeOffQueries) *TimeOffHandler {
	return &TimeOffHandler{
		timeOffCommands: timeOffCommands,
		timeOffQueries:  timeOffQueries,
	}
}

// @Summary List time-off periods
// @Tags time-off
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TimeOffResponse
// @Router /admin/time-off [get]
func (h *TimeOffHandler) List(c *gin.Context) {
	views, err := h.timeOffQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeOffViews(views))
}

// @Summary Create time-off period
// @Tags time-off
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimeOffRequest true "Time-off request"
// @Success 201 {object} resdto.TimeOffResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/time-off [post]
func (h *TimeOffHandler) Create(c *gin.Context) {
	var req reqdto.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.timeOffCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTimeOffView(view))
}

// @Summary Update time-off period
// @Tags time-off
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time-off ID"
// @Param request body reqdto.UpdateTimeOffRequest true "Partial update"
// @Success 200 {object} resdto.TimeOffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/time-off/{id} [patch]
func (h *TimeOffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time-off ID format",
		})
		return
	}

	var req reqdto.UpdateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.timeOffCommands.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeOffView(view))
}

// @Summary Delete time-off period
// @Tags time-off
// @Security BearerAuth
// @Param id path string true "Time-off ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/time-off/{id} [delete]
func (h *TimeOffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time-off ID format",
		})
		return
	}

	if err := h.timeOffCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TimeOffHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrTimeOffNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Time-off period not found",
		})
	case errs.Is(err, commands.ErrInvalidTimeOffWindow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Start time must be before end time",
		})
	case errs.Is(err, commands.ErrInvalidRecurrence):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid recurrence configuration",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
