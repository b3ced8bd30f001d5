package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	BufferMinutes   int       `json:"bufferMinutes"`
	PriceCents      int64     `json:"priceCents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:              view.ID,
		Name:            view.Name,
		Description:     view.Description,
		DurationMinutes: view.DurationMinutes,
		BufferMinutes:   view.BufferMinutes,
		PriceCents:      view.PriceCents,
		IsActive:        view.IsActive,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	resp := make([]*ServiceResponse, len(views))
	for i, v := range views {
		resp[i] = FromServiceView(v)
	}
	return resp
}
