package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID   `json:"id"`
	ClientName  string      `json:"clientName"`
	ClientEmail string      `json:"clientEmail"`
	ClientPhone *string     `json:"clientPhone,omitempty"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Status      string      `json:"status"`
	PriceCents  int64       `json:"priceCents"`
	ServiceIDs  []uuid.UUID `json:"serviceIds"`
	Note        *string     `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type AppointmentListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"clientName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AppointmentListResponse struct {
	Items      []*AppointmentListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          view.ID,
		ClientName:  view.ClientName,
		ClientEmail: view.ClientEmail,
		ClientPhone: view.ClientPhone,
		StartTime:   view.StartTime,
		EndTime:     view.EndTime,
		Status:      view.Status,
		PriceCents:  view.PriceCents,
		ServiceIDs:  view.ServiceIDs,
		Note:        view.Note,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromAppointmentList(items []*queries.AppointmentListItem, next *queries.Cursor) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Items: make([]*AppointmentListItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = &AppointmentListItemResponse{
			ID:         item.ID,
			ClientName: item.ClientName,
			StartTime:  item.StartTime,
			EndTime:    item.EndTime,
			Status:     item.Status,
			PriceCents: item.PriceCents,
			CreatedAt:  item.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
