package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/patch"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeOffWindow = errs.New("time-off start must be before end")
	ErrInvalidRecurrence    = errs.New("invalid recurrence configuration")
)

type CreateTimeOffRequest struct {
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	Recurring     bool
	Pattern       string
	RecurrenceEnd *time.Time
}

// UpdateTimeOffRequest carries partial updates; nil fields keep the stored
// value.
type UpdateTimeOffRequest struct {
	Title         *string
	StartTime     *time.Time
	EndTime       *time.Time
	Recurring     *bool
	Pattern       *string
	RecurrenceEnd *time.Time
	IsActive      *bool
}

type TimeOffCommands interface {
	Create(ctx context.Context, req CreateTimeOffRequest) (*queries.TimeOffView, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTimeOffRequest) (*queries.TimeOffView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeOffCommandsImpl struct {
	timeOffRepo    TimeOffRepository
	timeOffQueries queries.TimeOffQueries
}

func NewTimeOffCommands(timeOffRepo TimeOffRepository, timeOffQueries queries.TimeOffQueries) TimeOffCommands {
	return &timeOffCommandsImpl{
		timeOffRepo:    timeOffRepo,
		timeOffQueries: timeOffQueries,
	}
}

func (c *timeOffCommandsImpl) Create(ctx context.Context, req CreateTimeOffRequest) (*queries.TimeOffView, error) {
	period := schedule.TimeOffPeriod{
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Recurring:     req.Recurring,
		Pattern:       schedule.RecurrencePattern(req.Pattern),
		RecurrenceEnd: req.RecurrenceEnd,
		Active:        true,
	}
	if !period.Recurring && period.Pattern == "" {
		period.Pattern = schedule.RecurrenceNone
	}

	if err := validateTimeOff(period); err != nil {
		return nil, err
	}

	id, err := c.timeOffRepo.Create(ctx, &period)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.timeOffQueries.GetByID(ctx, id)
}

func (c *timeOffCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateTimeOffRequest) (*queries.TimeOffView, error) {
	current, err := c.timeOffRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTimeOffNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	updated := *current
	updated.Title = patch.Coalesce(req.Title, current.Title)
	updated.StartTime = patch.Coalesce(req.StartTime, current.StartTime)
	updated.EndTime = patch.Coalesce(req.EndTime, current.EndTime)
	updated.Recurring = patch.Coalesce(req.Recurring, current.Recurring)
	updated.Pattern = schedule.RecurrencePattern(patch.Coalesce(req.Pattern, string(current.Pattern)))
	updated.Active = patch.Coalesce(req.IsActive, current.Active)
	if req.RecurrenceEnd != nil {
		updated.RecurrenceEnd = req.RecurrenceEnd
	}

	if err := validateTimeOff(updated); err != nil {
		return nil, err
	}

	if err := c.timeOffRepo.Update(ctx, &updated); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.timeOffQueries.GetByID(ctx, id)
}

func (c *timeOffCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.timeOffRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrTimeOffNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func validateTimeOff(p schedule.TimeOffPeriod) error {
	if !p.StartTime.Before(p.EndTime) {
		return ErrInvalidTimeOffWindow
	}
	if !p.Pattern.IsValid() {
		return ErrInvalidRecurrence
	}
	if p.Recurring && p.Pattern == schedule.RecurrenceNone {
		return ErrInvalidRecurrence
	}
	if !p.Recurring && p.Pattern != schedule.RecurrenceNone {
		return ErrInvalidRecurrence
	}
	if p.RecurrenceEnd != nil && !p.RecurrenceEnd.After(p.StartTime) {
		return ErrInvalidRecurrence
	}
	return nil
}
