//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneOff(start, end time.Time) schedule.TimeOffPeriod {
	return schedule.TimeOffPeriod{
		ID:        uuid.New(),
		Title:     "one-off",
		StartTime: start,
		EndTime:   end,
		Pattern:   schedule.RecurrenceNone,
		Active:    true,
	}
}

func recurring(start, end time.Time, pattern schedule.RecurrencePattern) schedule.TimeOffPeriod {
	return schedule.TimeOffPeriod{
		ID:        uuid.New(),
		Title:     "recurring",
		StartTime: start,
		EndTime:   end,
		Recurring: true,
		Pattern:   pattern,
		Active:    true,
	}
}

func TestOccurrencesInRange_NonRecurring(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	p := oneOff(start, end)

	t.Run("intersecting range returns the period itself", func(t *testing.T) {
		occs := schedule.OccurrencesInRange(p, start.Add(-time.Hour), end.Add(time.Hour))
		require.Len(t, occs, 1)
		assert.Equal(t, start, occs[0].Start)
		assert.Equal(t, end, occs[0].End)
	})

	t.Run("disjoint range is empty", func(t *testing.T) {
		assert.Empty(t, schedule.OccurrencesInRange(p, end.Add(time.Hour), end.Add(2*time.Hour)))
	})

	t.Run("range touching the end is empty", func(t *testing.T) {
		assert.Empty(t, schedule.OccurrencesInRange(p, end, end.Add(time.Hour)))
	})
}

func TestOccurrencesInRange_Daily(t *testing.T) {
	// 22:00-23:00 every day, anchored Monday 2026-03-02.
	p := recurring(
		time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC),
		schedule.RecurrenceDaily,
	)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)

	occs := schedule.OccurrencesInRange(p, from, to)
	require.Len(t, occs, 3, "one occurrence per day in range")
	for i, occ := range occs {
		day := from.AddDate(0, 0, i)
		assert.Equal(t, day.Add(22*time.Hour), occ.Start)
		assert.Equal(t, time.Hour, occ.Duration())
	}
}

func TestOccurrencesInRange_Weekly(t *testing.T) {
	// Lunch 12:00-13:00 every Monday, anchored 2026-03-02.
	p := recurring(
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
		schedule.RecurrenceWeekly,
	)

	t.Run("occurrence two weeks later lands on the origin weekday", func(t *testing.T) {
		day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
		occs := schedule.OccurrencesInRange(p, day, day.AddDate(0, 0, 1))
		require.Len(t, occs, 1)
		assert.Equal(t, time.Monday, occs[0].Start.Weekday())
		assert.Equal(t, day.Add(12*time.Hour), occs[0].Start)
	})

	t.Run("no occurrence on other weekdays", func(t *testing.T) {
		tuesday := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, schedule.OccurrencesInRange(p, tuesday, tuesday.AddDate(0, 0, 1)))
	})

	t.Run("no occurrence before the anchor", func(t *testing.T) {
		prev := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, schedule.OccurrencesInRange(p, prev, prev.AddDate(0, 0, 1)))
	})

	t.Run("recurrence end is a hard stop", func(t *testing.T) {
		end := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		bounded := p
		bounded.RecurrenceEnd = &end

		day := time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, schedule.OccurrencesInRange(bounded, day, day.AddDate(0, 0, 1)))

		before := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
		assert.Len(t, schedule.OccurrencesInRange(bounded, before, before.AddDate(0, 0, 1)), 1)
	})

	t.Run("distant anchor still expands", func(t *testing.T) {
		old := recurring(
			time.Date(2020, 1, 6, 12, 0, 0, 0, time.UTC),
			time.Date(2020, 1, 6, 13, 0, 0, 0, time.UTC),
			schedule.RecurrenceWeekly,
		)
		day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
		occs := schedule.OccurrencesInRange(old, day, day.AddDate(0, 0, 1))
		require.Len(t, occs, 1)
		assert.Equal(t, time.Monday, occs[0].Start.Weekday())
	})
}

func TestOccurrencesInRange_Monthly(t *testing.T) {
	t.Run("same day of month", func(t *testing.T) {
		p := recurring(
			time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
			schedule.RecurrenceMonthly,
		)
		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

		occs := schedule.OccurrencesInRange(p, from, to)
		require.Len(t, occs, 1)
		assert.Equal(t, time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC), occs[0].Start)
	})

	t.Run("day 31 skips shorter months", func(t *testing.T) {
		p := recurring(
			time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
			schedule.RecurrenceMonthly,
		)

		// February and April have no 31st; no spill into adjacent months.
		feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, schedule.OccurrencesInRange(p, feb, feb.AddDate(0, 1, 0)))

		apr := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, schedule.OccurrencesInRange(p, apr, apr.AddDate(0, 1, 0)))

		mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		occs := schedule.OccurrencesInRange(p, mar, mar.AddDate(0, 1, 0))
		require.Len(t, occs, 1)
		assert.Equal(t, 31, occs[0].Start.Day())
	})
}

func TestIsBlockedAt(t *testing.T) {
	p := recurring(
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
		schedule.RecurrenceWeekly,
	)

	nextMonday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, schedule.IsBlockedAt(p, nextMonday.Add(12*time.Hour)))
	assert.True(t, schedule.IsBlockedAt(p, nextMonday.Add(12*time.Hour+30*time.Minute)))
	assert.False(t, schedule.IsBlockedAt(p, nextMonday.Add(13*time.Hour)), "occurrence end is exclusive")
	assert.False(t, schedule.IsBlockedAt(p, nextMonday.Add(11*time.Hour)))
}
