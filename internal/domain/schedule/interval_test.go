//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    schedule.Interval
		b    schedule.Interval
		want bool
	}{
		{
			name: "disjoint",
			a:    schedule.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    schedule.Interval{Start: at(11, 0), End: at(12, 0)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    schedule.Interval{Start: at(9, 0), End: at(10, 30)},
			b:    schedule.Interval{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
		{
			name: "contained",
			a:    schedule.Interval{Start: at(9, 0), End: at(12, 0)},
			b:    schedule.Interval{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    schedule.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    schedule.Interval{Start: at(10, 0), End: at(11, 0)},
			want: false,
		},
		{
			name: "identical",
			a:    schedule.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    schedule.Interval{Start: at(9, 0), End: at(10, 0)},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := schedule.Interval{Start: at(9, 0), End: at(10, 0)}

	assert.True(t, iv.Contains(at(9, 0)), "start is inclusive")
	assert.True(t, iv.Contains(at(9, 59)))
	assert.False(t, iv.Contains(at(10, 0)), "end is exclusive")
	assert.False(t, iv.Contains(at(8, 59)))
}
