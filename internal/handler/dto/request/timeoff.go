package request

import (
	"time"

	"slotbook/internal/usecase/commands"
)

type CreateTimeOffRequest struct {
	Title         string     `json:"title" binding:"required"`
	StartTime     time.Time  `json:"start_time" binding:"required"`
	EndTime       time.Time  `json:"end_time" binding:"required"`
	Recurring     bool       `json:"recurring"`
	Pattern       string     `json:"pattern,omitempty"`
	RecurrenceEnd *time.Time `json:"recurrence_end,omitempty"`
}

func (r CreateTimeOffRequest) ToCommand() commands.CreateTimeOffRequest {
	return commands.CreateTimeOffRequest{
		Title:         r.Title,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Recurring:     r.Recurring,
		Pattern:       r.Pattern,
		RecurrenceEnd: r.RecurrenceEnd,
	}
}

// UpdateTimeOffRequest is a partial update; omitted fields keep their stored
// values.
type UpdateTimeOffRequest struct {
	Title         *string    `json:"title,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Recurring     *bool      `json:"recurring,omitempty"`
	Pattern       *string    `json:"pattern,omitempty"`
	RecurrenceEnd *time.Time `json:"recurrence_end,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

func (r UpdateTimeOffRequest) ToCommand() commands.UpdateTimeOffRequest {
	return commands.UpdateTimeOffRequest{
		Title:         r.Title,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Recurring:     r.Recurring,
		Pattern:       r.Pattern,
		RecurrenceEnd: r.RecurrenceEnd,
		IsActive:      r.IsActive,
	}
}
