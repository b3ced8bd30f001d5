//go:build unit || e2e

package builder

import (
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	StartTime   time.Time
	EndTime     time.Time
	ServiceIDs  []uuid.UUID
	Status      string
	PriceCents  int64
	Note        string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	start := time.Now().Truncate(time.Hour).Add(48 * time.Hour)
	return &AppointmentBuilder{
		ClientName:  "Jamie Doe",
		ClientEmail: "jamie@example.com",
		ClientPhone: "+15551234567",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		ServiceIDs:  []uuid.UUID{uuid.New()},
		Status:      "confirmed",
		PriceCents:  5000,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	req := reqdto.BookAppointmentRequest{
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		StartTime:   b.StartTime,
		ServiceIDs:  b.ServiceIDs,
	}
	if b.ClientPhone != "" {
		phone := b.ClientPhone
		req.ClientPhone = &phone
	}
	if b.Note != "" {
		note := b.Note
		req.Note = &note
	}
	return req
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	view := &queries.AppointmentView{
		ID:          uuid.New(),
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		PriceCents:  b.PriceCents,
		ServiceIDs:  b.ServiceIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.ClientPhone != "" {
		phone := b.ClientPhone
		view.ClientPhone = &phone
	}
	if b.Note != "" {
		note := b.Note
		view.Note = &note
	}
	return view
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:         uuid.New(),
		ClientName: b.ClientName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status,
		PriceCents: b.PriceCents,
		CreatedAt:  time.Now(),
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithClientEmail(email string) *AppointmentBuilder {
	b.ClientEmail = email
	return b
}

func (b *AppointmentBuilder) WithStartTime(start time.Time) *AppointmentBuilder {
	b.StartTime = start
	return b
}

func (b *AppointmentBuilder) WithServiceIDs(ids ...uuid.UUID) *AppointmentBuilder {
	b.ServiceIDs = ids
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}
