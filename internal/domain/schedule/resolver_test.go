//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(policy schedule.BookingPolicy) *schedule.Resolver {
	return schedule.NewResolver(quietCalendar(), policy)
}

func mondayHours() []schedule.WeekdayHours {
	return []schedule.WeekdayHours{
		{Weekday: time.Monday, Open: true, TimeSlots: []string{"08:00", "17:30"}},
	}
}

func slotStarts(slots []schedule.Slot) []time.Time {
	starts := make([]time.Time, len(slots))
	for i, s := range slots {
		starts[i] = s.Start
	}
	return starts
}

func TestResolve_EarliestSlotHonorsAdvanceNotice(t *testing.T) {
	// Monday hours 08:00-17:30, duration 60, granularity 30, now Mon 09:10,
	// 2h minimum advance: first slot is the grid point at or after 11:10.
	r := newResolver(schedule.DefaultBookingPolicy())

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 60,
		Hours:           mondayHours(),
		Now:             monday.Add(9*time.Hour + 10*time.Minute),
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, monday.Add(11*time.Hour+30*time.Minute), slots[0].Start)
	// duration 60 within a 17:30 close means the last start is 16:30
	assert.Equal(t, monday.Add(16*time.Hour+30*time.Minute), slots[len(slots)-1].Start)
}

func TestResolve_WeeklyTimeOffBlocksSpanningCandidates(t *testing.T) {
	// Weekly "Lunch" 12:00-13:00 anchored two Mondays earlier. A 60-minute
	// candidate at 11:30 runs into the blocked window; 11:00 ends exactly at
	// 12:00 and stays bookable under half-open semantics.
	r := newResolver(schedule.DefaultBookingPolicy())
	queried := monday.AddDate(0, 0, 14)

	lunch := recurring(
		monday.Add(12*time.Hour),
		monday.Add(13*time.Hour),
		schedule.RecurrenceWeekly,
	)
	lunch.Title = "Lunch"

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            queried,
		DurationMinutes: 60,
		Hours:           mondayHours(),
		TimeOff:         []schedule.TimeOffPeriod{lunch},
		Now:             queried.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, queried.Add(11*time.Hour))
	assert.NotContains(t, starts, queried.Add(11*time.Hour+30*time.Minute))
	assert.NotContains(t, starts, queried.Add(12*time.Hour))
	assert.NotContains(t, starts, queried.Add(12*time.Hour+30*time.Minute))
	assert.Contains(t, starts, queried.Add(13*time.Hour))
}

func TestResolve_AppointmentsBlockOverlappingCandidates(t *testing.T) {
	// Existing appointment 10:00-11:00: candidate 10:30 (ending 11:30)
	// collides, candidate 11:00 does not.
	r := newResolver(schedule.DefaultBookingPolicy())

	booked := []schedule.BookedInterval{
		{Interval: schedule.Interval{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)}},
	}

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 60,
		Hours:           mondayHours(),
		Booked:          booked,
		Now:             monday.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, monday.Add(9*time.Hour+30*time.Minute))
	assert.NotContains(t, starts, monday.Add(10*time.Hour))
	assert.NotContains(t, starts, monday.Add(10*time.Hour+30*time.Minute))
	assert.Contains(t, starts, monday.Add(9*time.Hour))
	assert.Contains(t, starts, monday.Add(11*time.Hour))
}

func TestResolve_CanceledAppointmentsDoNotBlock(t *testing.T) {
	r := newResolver(schedule.DefaultBookingPolicy())

	booked := []schedule.BookedInterval{
		{
			Interval: schedule.Interval{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)},
			Canceled: true,
		},
	}

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 60,
		Hours:           mondayHours(),
		Booked:          booked,
		Now:             monday.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Contains(t, slotStarts(slots), monday.Add(10*time.Hour))
}

func TestResolve_SameDayDisabled(t *testing.T) {
	// now Mon 10:00 with same-day booking off: nothing before Tue 10:00 is
	// ever returned, regardless of Monday's open windows.
	policy := schedule.DefaultBookingPolicy()
	policy.AllowSameDayBooking = false
	r := newResolver(policy)

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 30,
		Hours:           mondayHours(),
		Now:             monday.Add(10 * time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)

	tuesday := monday.AddDate(0, 0, 1)
	slots, err = r.Resolve(schedule.ResolveInput{
		Date:            tuesday,
		DurationMinutes: 30,
		Hours: []schedule.WeekdayHours{
			{Weekday: time.Tuesday, Open: true, TimeSlots: []string{"08:00", "17:30"}},
		},
		Now: monday.Add(10 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.False(t, slots[0].Start.Before(monday.Add(34*time.Hour)), "first slot must be at or after Tue 10:00")
}

func TestResolve_ClosedDayIsEmpty(t *testing.T) {
	r := newResolver(schedule.DefaultBookingPolicy())

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 30,
		Hours:           []schedule.WeekdayHours{{Weekday: time.Monday, Open: false}},
		Now:             monday.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolve_InvalidDuration(t *testing.T) {
	r := newResolver(schedule.DefaultBookingPolicy())

	for _, d := range []int{0, -30} {
		_, err := r.Resolve(schedule.ResolveInput{
			Date:            monday,
			DurationMinutes: d,
			Hours:           mondayHours(),
			Now:             monday,
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	}
}

func TestResolve_BookingCannotStraddleWindows(t *testing.T) {
	// 90-minute booking at 11:00 would end 12:30, past the morning window's
	// close; the afternoon window does not rescue it.
	r := newResolver(schedule.DefaultBookingPolicy())

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 90,
		Hours: []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"09:00", "12:00", "13:00", "18:00"}},
		},
		Now: monday.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, monday.Add(10*time.Hour+30*time.Minute))
	assert.NotContains(t, starts, monday.Add(11*time.Hour))
	assert.NotContains(t, starts, monday.Add(11*time.Hour+30*time.Minute))
	assert.Contains(t, starts, monday.Add(13*time.Hour))
}

func TestResolve_BeyondMaxAdvanceIsEmpty(t *testing.T) {
	policy := schedule.DefaultBookingPolicy()
	policy.MaxAdvanceDays = 7
	r := newResolver(policy)

	farOut := monday.AddDate(0, 0, 14)
	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            farOut,
		DurationMinutes: 30,
		Hours:           mondayHours(),
		Now:             monday,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolve_Deterministic(t *testing.T) {
	r := newResolver(schedule.DefaultBookingPolicy())

	in := schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 60,
		Hours:           mondayHours(),
		TimeOff: []schedule.TimeOffPeriod{
			recurring(monday.Add(12*time.Hour), monday.Add(13*time.Hour), schedule.RecurrenceDaily),
		},
		Booked: []schedule.BookedInterval{
			{Interval: schedule.Interval{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)}},
		},
		Now: monday.Add(-48 * time.Hour),
	}

	first, err := r.Resolve(in)
	require.NoError(t, err)
	second, err := r.Resolve(in)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i].Start.After(first[i-1].Start), "slots must be strictly ascending")
	}
}

func TestResolve_ResultsNeverOverlapInputs(t *testing.T) {
	r := newResolver(schedule.DefaultBookingPolicy())

	timeOff := []schedule.TimeOffPeriod{
		recurring(monday.Add(12*time.Hour), monday.Add(13*time.Hour), schedule.RecurrenceWeekly),
		oneOff(monday.Add(15*time.Hour), monday.Add(15*time.Hour+45*time.Minute)),
	}
	booked := []schedule.BookedInterval{
		{Interval: schedule.Interval{Start: monday.Add(8*time.Hour + 30*time.Minute), End: monday.Add(9*time.Hour + 15*time.Minute)}},
		{Interval: schedule.Interval{Start: monday.Add(14 * time.Hour), End: monday.Add(14*time.Hour + 30*time.Minute)}},
	}

	slots, err := r.Resolve(schedule.ResolveInput{
		Date:            monday,
		DurationMinutes: 45,
		Hours:           mondayHours(),
		TimeOff:         timeOff,
		Booked:          booked,
		Now:             monday.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		candidate := schedule.Interval{Start: s.Start, End: s.Start.Add(45 * time.Minute)}
		for _, b := range booked {
			assert.False(t, candidate.Overlaps(b.Interval), "slot %v overlaps appointment %v", s.Start, b)
		}
		for _, p := range timeOff {
			for _, occ := range schedule.OccurrencesInRange(p, candidate.Start, candidate.End) {
				assert.False(t, candidate.Overlaps(occ), "slot %v overlaps time-off %v", s.Start, occ)
			}
		}
	}
}
