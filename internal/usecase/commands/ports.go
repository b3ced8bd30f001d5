package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	BufferMinutes   int
	PriceCents      int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ServiceRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ServiceSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error
}

type TimeOffRepository interface {
	Create(ctx context.Context, p *schedule.TimeOffPeriod) (uuid.UUID, error)
	Update(ctx context.Context, p *schedule.TimeOffPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.TimeOffPeriod, error)
}

type BusinessHoursRepository interface {
	ReplaceWeek(ctx context.Context, tx db.DBTX, week []schedule.WeekdayHours) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
