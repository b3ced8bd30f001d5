package repository

import (
	"context"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
)

// ScheduleRepository is the read side of the availability resolver: one place
// to load business hours, active time off, and booked intervals.
type ScheduleRepository struct {
	db db.DBTX
}

func NewScheduleRepository(db db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) GetWeekHours(ctx context.Context) ([]schedule.WeekdayHours, error) {
	rows, err := r.db.Query(ctx, `
		SELECT weekday, is_open, time_slots
		FROM business_hours
		ORDER BY weekday`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load business hours", err)
	}
	defer rows.Close()

	var week []schedule.WeekdayHours
	for rows.Next() {
		var weekday int
		var h schedule.WeekdayHours
		if err := rows.Scan(&weekday, &h.Open, &h.TimeSlots); err != nil {
			return nil, infra.WrapRepoErr("failed to scan business hours row", err)
		}
		h.Weekday = time.Weekday(weekday)
		week = append(week, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read business hours rows", err)
	}

	return week, nil
}

func (r *ScheduleRepository) FindActiveTimeOff(ctx context.Context) ([]schedule.TimeOffPeriod, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, start_time, end_time, recurring, pattern, recurrence_end, is_active
		FROM time_off_periods
		WHERE is_active
		ORDER BY start_time`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load time-off periods", err)
	}
	defer rows.Close()

	var periods []schedule.TimeOffPeriod
	for rows.Next() {
		p, err := scanTimeOffPeriod(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time-off row", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time-off rows", err)
	}

	return periods, nil
}

// FindBlockingIntervals returns the occupied intervals of non-canceled
// appointments overlapping [from, to).
func (r *ScheduleRepository) FindBlockingIntervals(ctx context.Context, from, to time.Time) ([]schedule.BookedInterval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lower(slot), upper(slot), status
		FROM appointments
		WHERE status <> 'canceled'
		  AND slot && tstzrange($1, $2, '[)')
		ORDER BY lower(slot)`,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked intervals", err)
	}
	defer rows.Close()

	var booked []schedule.BookedInterval
	for rows.Next() {
		var start, end time.Time
		var status string
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked interval", err)
		}
		booked = append(booked, schedule.BookedInterval{
			Interval: schedule.Interval{Start: start, End: end},
			Canceled: status == "canceled",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked interval rows", err)
	}

	return booked, nil
}
