package request

import (
	"strings"
	"time"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ClientName  string      `json:"client_name" binding:"required"`
	ClientEmail string      `json:"client_email" binding:"required,email"`
	ClientPhone *string     `json:"client_phone,omitempty"`
	StartTime   time.Time   `json:"start_time" binding:"required"`
	ServiceIDs  []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	Note        *string     `json:"note,omitempty"`
}

func (r BookAppointmentRequest) ToCommand() commands.BookAppointmentRequest {
	cmd := commands.BookAppointmentRequest{
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		StartTime:   r.StartTime,
		ServiceIDs:  r.ServiceIDs,
	}
	if r.ClientPhone != nil {
		cmd.ClientPhone = strings.TrimSpace(*r.ClientPhone)
	}
	if r.Note != nil {
		cmd.Note = strings.TrimSpace(*r.Note)
	}
	return cmd
}
