package repository

import (
	"context"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
)

// BusinessHoursRepository is the write side of the weekly schedule. Reads go
// through ScheduleRepository.
type BusinessHoursRepository struct{}

func NewBusinessHoursRepository() *BusinessHoursRepository {
	return &BusinessHoursRepository{}
}

func (r *BusinessHoursRepository) ReplaceWeek(ctx context.Context, tx db.DBTX, week []schedule.WeekdayHours) error {
	if _, err := tx.Exec(ctx, `DELETE FROM business_hours`); err != nil {
		return infra.WrapRepoErr("failed to clear business hours", err)
	}

	for _, h := range week {
		_, err := tx.Exec(ctx, `
			INSERT INTO business_hours (weekday, is_open, time_slots, updated_at)
			VALUES ($1, $2, $3, now())`,
			int(h.Weekday), h.Open, h.TimeSlots)
		if err != nil {
			return infra.WrapRepoErr("failed to insert business hours", err)
		}
	}

	return nil
}
