package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeOffResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	Recurring     bool       `json:"recurring"`
	Pattern       string     `json:"pattern"`
	RecurrenceEnd *time.Time `json:"recurrenceEnd,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromTimeOffView(view *queries.TimeOffView) *TimeOffResponse {
	return &TimeOffResponse{
		ID:            view.ID,
		Title:         view.Title,
		StartTime:     view.StartTime,
		EndTime:       view.EndTime,
		Recurring:     view.Recurring,
		Pattern:       view.Pattern,
		RecurrenceEnd: view.RecurrenceEnd,
		IsActive:      view.IsActive,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

func FromTimeOffViews(views []*queries.TimeOffView) []*TimeOffResponse {
	resp := make([]*TimeOffResponse, len(views))
	for i, v := range views {
		resp[i] = FromTimeOffView(v)
	}
	return resp
}
