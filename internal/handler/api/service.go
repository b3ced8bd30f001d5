package api

import (
	"net/http"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{serviceQueries: serviceQueries}
}

// @Summary List services
// @Description List bookable services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.serviceQueries.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Description Get service by ID
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}
