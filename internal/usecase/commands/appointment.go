package commands

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookAppointmentRequest struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	StartTime   time.Time
	ServiceIDs  []uuid.UUID
	Note        string
}

type AppointmentCommands interface {
	Book(ctx context.Context, req BookAppointmentRequest) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	appointmentRepo     AppointmentRepository
	serviceRepo         ServiceRepository
	factory             *appointment.Factory
	availabilityQueries queries.AvailabilityQueries
	appointmentQueries  queries.AppointmentQueries
	pool                *pgxpool.Pool
	clock               clock.Clock
}

func NewAppointmentCommands(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	factory *appointment.Factory,
	availabilityQueries queries.AvailabilityQueries,
	appointmentQueries queries.AppointmentQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		appointmentRepo:     appointmentRepo,
		serviceRepo:         serviceRepo,
		factory:             factory,
		availabilityQueries: availabilityQueries,
		appointmentQueries:  appointmentQueries,
		pool:                pool,
		clock:               clock,
	}
}

func (c *appointmentCommandsImpl) Book(ctx context.Context, req BookAppointmentRequest) (*queries.AppointmentView, error) {
	client, err := appointment.NewClient(req.ClientName, req.ClientEmail, req.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	services, err := c.loadServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	appt, err := c.factory.CreateAppointment(client, req.StartTime, services, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrTooEarly):
			return nil, errs.Mark(err, errs.ErrInsufficientNotice)
		case errors.Is(err, appointment.ErrTooFarAhead):
			return nil, errs.Mark(err, errs.ErrSlotNotAvailable)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	// The requested start must be one of the slots the resolver would offer
	// for that day; the exclusion constraint below only guards against races.
	if err := c.verifyOffered(ctx, req); err != nil {
		return nil, err
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.appointmentRepo.Create(ctx, tx, appt)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the full view from the read side
	view, err := c.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(appt *appointment.Appointment) error {
		return appt.Cancel(c.clock.Now())
	})
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(appt *appointment.Appointment) error {
		return appt.Complete(c.clock.Now())
	})
}

func (c *appointmentCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(appt *appointment.Appointment) error {
		return appt.MarkNoShow(c.clock.Now())
	})
}

func (c *appointmentCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*appointment.Appointment) error) error {
	// Read-modify-write on a contended row; retry on serialization failures.
	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		appt, err := c.appointmentRepo.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, errs.ErrAppointmentNotFound)
			}
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := apply(appt); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := c.appointmentRepo.UpdateStatus(ctx, tx, appt); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *appointmentCommandsImpl) loadServices(ctx context.Context, ids []uuid.UUID) ([]catalog.Service, error) {
	if len(ids) == 0 {
		return nil, errs.Mark(appointment.ErrNoServices, errs.ErrDomainValidation)
	}

	snapshots, err := c.serviceRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(snapshots) != len(ids) {
		return nil, errs.ErrServiceNotFound
	}

	services := make([]catalog.Service, len(snapshots))
	for i, s := range snapshots {
		if !s.IsActive {
			return nil, errs.ErrServiceInactive
		}
		services[i] = *catalog.ReconstructService(
			s.ID, s.Name, s.DurationMinutes, s.BufferMinutes, s.PriceCents, s.IsActive, s.CreatedAt, s.UpdatedAt,
		)
	}
	return services, nil
}

func (c *appointmentCommandsImpl) verifyOffered(ctx context.Context, req BookAppointmentRequest) error {
	view, err := c.availabilityQueries.GetDayAvailability(ctx, req.StartTime, req.ServiceIDs, nil)
	if err != nil {
		return err
	}

	for _, slot := range view.Slots {
		if slot.Equal(req.StartTime) {
			return nil
		}
	}
	return errs.ErrSlotNotAvailable
}
