//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	Name            string
	Description     string
	DurationMinutes int
	BufferMinutes   int
	PriceCents      int64
	IsActive        bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Name:            "Haircut",
		Description:     "Standard cut and style",
		DurationMinutes: 45,
		BufferMinutes:   15,
		PriceCents:      4500,
		IsActive:        true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	view := &queries.ServiceView{
		ID:              uuid.New(),
		Name:            b.Name,
		DurationMinutes: b.DurationMinutes,
		BufferMinutes:   b.BufferMinutes,
		PriceCents:      b.PriceCents,
		IsActive:        b.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if b.Description != "" {
		desc := b.Description
		view.Description = &desc
	}
	return view
}

// Fluent builder methods
func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithDuration(minutes int) *ServiceBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.IsActive = false
	return b
}
