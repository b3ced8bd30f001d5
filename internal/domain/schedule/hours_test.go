//go:build unit

package schedule_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietCalendar() *schedule.Calendar {
	return schedule.NewCalendar(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Monday 2026-03-02.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestWindowsForDate(t *testing.T) {
	cal := quietCalendar()

	t.Run("single window", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"08:00", "17:30"}},
		}
		windows, err := cal.WindowsForDate(hours, monday)
		require.NoError(t, err)
		assert.Equal(t, []schedule.Window{{StartMin: 480, EndMin: 1050}}, windows)
	})

	t.Run("split shift keeps the lunch gap", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"09:00", "12:00", "13:00", "18:00"}},
		}
		windows, err := cal.WindowsForDate(hours, monday)
		require.NoError(t, err)

		want := []schedule.Window{
			{StartMin: 540, EndMin: 720},
			{StartMin: 780, EndMin: 1080},
		}
		assert.Empty(t, cmp.Diff(want, windows))
	})

	t.Run("closed day", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: false, TimeSlots: []string{"08:00", "17:30"}},
		}
		windows, err := cal.WindowsForDate(hours, monday)
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("open day without slots is closed", func(t *testing.T) {
		hours := []schedule.WeekdayHours{{Weekday: time.Monday, Open: true}}
		windows, err := cal.WindowsForDate(hours, monday)
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("missing weekday falls back to defaults", func(t *testing.T) {
		windows, err := cal.WindowsForDate(nil, monday)
		require.NoError(t, err)
		assert.Equal(t, []schedule.Window{{StartMin: 480, EndMin: 1050}}, windows)

		saturday := monday.AddDate(0, 0, 5)
		windows, err = cal.WindowsForDate(nil, saturday)
		require.NoError(t, err)
		assert.Empty(t, windows, "weekend default is closed")
	})

	t.Run("odd slot count fails fast", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"08:00", "12:00", "13:00"}},
		}
		_, err := cal.WindowsForDate(hours, monday)
		assert.ErrorIs(t, err, schedule.ErrUnpairedTimeSlots)
	})

	t.Run("inverted pair fails", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"12:00", "08:00"}},
		}
		_, err := cal.WindowsForDate(hours, monday)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("unsorted pairs come back ascending", func(t *testing.T) {
		hours := []schedule.WeekdayHours{
			{Weekday: time.Monday, Open: true, TimeSlots: []string{"13:00", "18:00", "09:00", "12:00"}},
		}
		windows, err := cal.WindowsForDate(hours, monday)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Less(t, windows[0].StartMin, windows[1].StartMin)
	})
}

func TestValidateWeek(t *testing.T) {
	valid := []schedule.WeekdayHours{
		{Weekday: time.Monday, Open: true, TimeSlots: []string{"08:00", "17:30"}},
		{Weekday: time.Sunday, Open: false},
	}
	assert.NoError(t, schedule.ValidateWeek(valid))

	odd := []schedule.WeekdayHours{
		{Weekday: time.Monday, Open: true, TimeSlots: []string{"08:00"}},
	}
	assert.ErrorIs(t, schedule.ValidateWeek(odd), schedule.ErrUnpairedTimeSlots)
}

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "17:30", want: 1050},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := schedule.ParseMinuteOfDay(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, schedule.FormatMinuteOfDay(got))
		})
	}
}
