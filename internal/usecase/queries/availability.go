package queries

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityView is the read model for a single day's bookable slots.
type AvailabilityView struct {
	Date            string      `json:"date"`
	DurationMinutes int         `json:"duration_minutes"`
	Slots           []time.Time `json:"slots"`
}

// ScheduleReadStore loads everything the resolver needs for one day in a
// single round of queries.
type ScheduleReadStore interface {
	GetWeekHours(ctx context.Context) ([]schedule.WeekdayHours, error)
	FindActiveTimeOff(ctx context.Context) ([]schedule.TimeOffPeriod, error)
	FindBlockingIntervals(ctx context.Context, from, to time.Time) ([]schedule.BookedInterval, error)
}

type AvailabilityQueries interface {
	GetDayAvailability(ctx context.Context, day time.Time, serviceIDs []uuid.UUID, durationMinutes *int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	scheduleStore ScheduleReadStore
	serviceStore  ServiceReadStore
	resolver      *schedule.Resolver
	clock         clock.Clock
	loc           *time.Location
}

func NewAvailabilityQueries(
	scheduleStore ScheduleReadStore,
	serviceStore ServiceReadStore,
	resolver *schedule.Resolver,
	clock clock.Clock,
	loc *time.Location,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		scheduleStore: scheduleStore,
		serviceStore:  serviceStore,
		resolver:      resolver,
		clock:         clock,
		loc:           loc,
	}
}

func (q *availabilityQueriesImpl) GetDayAvailability(
	ctx context.Context,
	day time.Time,
	serviceIDs []uuid.UUID,
	durationMinutes *int,
) (*AvailabilityView, error) {
	duration, err := q.resolveDuration(ctx, serviceIDs, durationMinutes)
	if err != nil {
		return nil, err
	}

	day = day.In(q.loc)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, q.loc)
	dayEnd := date.AddDate(0, 0, 1)

	hours, err := q.scheduleStore.GetWeekHours(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	timeOff, err := q.scheduleStore.FindActiveTimeOff(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	booked, err := q.scheduleStore.FindBlockingIntervals(ctx, date, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots, err := q.resolver.Resolve(schedule.ResolveInput{
		Date:            date,
		DurationMinutes: duration,
		Hours:           hours,
		TimeOff:         timeOff,
		Booked:          booked,
		Now:             q.clock.Now().In(q.loc),
	})
	if err != nil {
		// A resolver failure here is either a bad duration or a malformed
		// persisted hours row; the caller must be able to tell them apart.
		if errors.Is(err, schedule.ErrInvalidDuration) {
			return nil, errs.Mark(err, errs.ErrInvalidDuration)
		}
		return nil, errs.Mark(err, errs.ErrInvalidConfig)
	}

	starts := make([]time.Time, len(slots))
	for i, s := range slots {
		starts[i] = s.Start
	}

	return &AvailabilityView{
		Date:            date.Format("2006-01-02"),
		DurationMinutes: duration,
		Slots:           starts,
	}, nil
}

// resolveDuration prefers an explicit duration override; otherwise the total
// is summed from the requested services including their buffers.
func (q *availabilityQueriesImpl) resolveDuration(
	ctx context.Context,
	serviceIDs []uuid.UUID,
	durationMinutes *int,
) (int, error) {
	if durationMinutes != nil {
		if *durationMinutes <= 0 {
			return 0, errs.ErrInvalidDuration
		}
		return *durationMinutes, nil
	}

	if len(serviceIDs) == 0 {
		return 0, errs.ErrInvalidDuration
	}

	services, err := q.serviceStore.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(services) != len(serviceIDs) {
		return 0, errs.ErrServiceNotFound
	}

	total := 0
	for _, svc := range services {
		if !svc.IsActive {
			return 0, errs.ErrServiceInactive
		}
		total += svc.DurationMinutes + svc.BufferMinutes
	}

	return total, nil
}
