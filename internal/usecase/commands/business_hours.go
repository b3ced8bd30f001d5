package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WeekdayHoursInput struct {
	Weekday   int
	IsOpen    bool
	TimeSlots []string
}

type BusinessHoursCommands interface {
	ReplaceWeek(ctx context.Context, week []WeekdayHoursInput) ([]*queries.WeekdayHoursView, error)
}

type businessHoursCommandsImpl struct {
	hoursRepo    BusinessHoursRepository
	hoursQueries queries.BusinessHoursQueries
	pool         *pgxpool.Pool
}

func NewBusinessHoursCommands(
	hoursRepo BusinessHoursRepository,
	hoursQueries queries.BusinessHoursQueries,
	pool *pgxpool.Pool,
) BusinessHoursCommands {
	return &businessHoursCommandsImpl{
		hoursRepo:    hoursRepo,
		hoursQueries: hoursQueries,
		pool:         pool,
	}
}

// ReplaceWeek swaps the whole weekly schedule in one transaction so a
// concurrent availability read never sees a half-applied week.
func (c *businessHoursCommandsImpl) ReplaceWeek(ctx context.Context, week []WeekdayHoursInput) ([]*queries.WeekdayHoursView, error) {
	if len(week) != 7 {
		return nil, errs.Mark(errs.New("week must cover all seven weekdays"), errs.ErrInvalidConfig)
	}

	hours := make([]schedule.WeekdayHours, len(week))
	seen := [7]bool{}
	for i, w := range week {
		if w.Weekday < 0 || w.Weekday > 6 || seen[w.Weekday] {
			return nil, errs.Mark(errs.New("invalid or duplicate weekday"), errs.ErrInvalidConfig)
		}
		seen[w.Weekday] = true
		hours[i] = schedule.WeekdayHours{
			Weekday:   time.Weekday(w.Weekday),
			Open:      w.IsOpen,
			TimeSlots: w.TimeSlots,
		}
	}

	if err := schedule.ValidateWeek(hours); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidConfig)
	}

	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.hoursRepo.ReplaceWeek(ctx, tx, hours)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.hoursQueries.GetWeek(ctx)
}
