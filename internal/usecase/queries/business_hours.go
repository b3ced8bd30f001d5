package queries

import (
	"context"

	"slotbook/internal/domain/schedule"
)

type WeekdayHoursView struct {
	Weekday   int      `json:"weekday"`
	IsOpen    bool     `json:"is_open"`
	TimeSlots []string `json:"time_slots"`
}

type BusinessHoursQueries interface {
	GetWeek(ctx context.Context) ([]*WeekdayHoursView, error)
}

type businessHoursQueriesImpl struct {
	scheduleStore ScheduleReadStore
}

func NewBusinessHoursQueries(scheduleStore ScheduleReadStore) BusinessHoursQueries {
	return &businessHoursQueriesImpl{scheduleStore: scheduleStore}
}

func (q *businessHoursQueriesImpl) GetWeek(ctx context.Context) ([]*WeekdayHoursView, error) {
	week, err := q.scheduleStore.GetWeekHours(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*WeekdayHoursView, len(week))
	for i, h := range week {
		views[i] = toWeekdayHoursView(h)
	}
	return views, nil
}

func toWeekdayHoursView(h schedule.WeekdayHours) *WeekdayHoursView {
	slots := h.TimeSlots
	if slots == nil {
		slots = []string{}
	}
	return &WeekdayHoursView{
		Weekday:   int(h.Weekday),
		IsOpen:    h.Open,
		TimeSlots: slots,
	}
}
