//go:build unit || e2e

package builder

import (
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeOffBuilder struct {
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	Recurring     bool
	Pattern       string
	RecurrenceEnd *time.Time
	IsActive      bool
}

func NewTimeOffBuilder() *TimeOffBuilder {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	return &TimeOffBuilder{
		Title:     "Vacation",
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Recurring: false,
		Pattern:   "none",
		IsActive:  true,
	}
}

func (b *TimeOffBuilder) With(mutate func(*TimeOffBuilder)) *TimeOffBuilder {
	mutate(b)
	return b
}

func (b *TimeOffBuilder) BuildCreateRequestDTO() reqdto.CreateTimeOffRequest {
	return reqdto.CreateTimeOffRequest{
		Title:         b.Title,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Recurring:     b.Recurring,
		Pattern:       b.Pattern,
		RecurrenceEnd: b.RecurrenceEnd,
	}
}

func (b *TimeOffBuilder) BuildView() *queries.TimeOffView {
	now := time.Now()
	return &queries.TimeOffView{
		ID:            uuid.New(),
		Title:         b.Title,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Recurring:     b.Recurring,
		Pattern:       b.Pattern,
		RecurrenceEnd: b.RecurrenceEnd,
		IsActive:      b.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fluent builder methods
func (b *TimeOffBuilder) WithTitle(title string) *TimeOffBuilder {
	b.Title = title
	return b
}

func (b *TimeOffBuilder) AsWeekly() *TimeOffBuilder {
	b.Recurring = true
	b.Pattern = "weekly"
	return b
}

func (b *TimeOffBuilder) AsDaily() *TimeOffBuilder {
	b.Recurring = true
	b.Pattern = "daily"
	return b
}

func (b *TimeOffBuilder) WithRecurrenceEnd(end time.Time) *TimeOffBuilder {
	b.RecurrenceEnd = &end
	return b
}
