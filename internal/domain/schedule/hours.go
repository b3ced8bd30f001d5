package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnpairedTimeSlots  = errors.New("time slots must come in start/end pairs")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrInvalidWindow      = errors.New("window start must be before window end")
	ErrOverlappingWindows = errors.New("windows within a day must not overlap")
)

// WeekdayHours is one weekday's configured opening hours. TimeSlots holds
// "HH:mm" strings in (start, end) pairs; multiple pairs describe disjoint
// windows such as a morning shift and an afternoon shift around lunch.
type WeekdayHours struct {
	Weekday   time.Weekday
	Open      bool
	TimeSlots []string
}

// Window is a contiguous open range within a single day, expressed in minutes
// from midnight.
type Window struct {
	StartMin int
	EndMin   int
}

// Calendar resolves weekly opening hours to the concrete windows of a date.
type Calendar struct {
	logger *slog.Logger
}

func NewCalendar(logger *slog.Logger) *Calendar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calendar{logger: logger}
}

// WindowsForDate returns the open windows for date, ascending by start.
// A closed day yields no windows and no error. A weekday with no configuration
// at all falls back to the documented defaults (Mon-Fri 08:00-17:30); the
// fallback is logged so a silently missing row is visible in operations.
func (c *Calendar) WindowsForDate(hours []WeekdayHours, date time.Time) ([]Window, error) {
	entry, found := hoursForWeekday(hours, date.Weekday())
	if !found {
		c.logger.Warn("no business hours configured for weekday, falling back to defaults",
			"weekday", date.Weekday().String(),
			"date", date.Format("2006-01-02"))
		entry = defaultWeekdayHours(date.Weekday())
	}

	if !entry.Open || len(entry.TimeSlots) == 0 {
		return nil, nil
	}
	if len(entry.TimeSlots)%2 != 0 {
		return nil, fmt.Errorf("%w: %s has %d entries", ErrUnpairedTimeSlots, entry.Weekday, len(entry.TimeSlots))
	}

	windows := make([]Window, 0, len(entry.TimeSlots)/2)
	for i := 0; i < len(entry.TimeSlots); i += 2 {
		start, err := ParseMinuteOfDay(entry.TimeSlots[i])
		if err != nil {
			return nil, err
		}
		end, err := ParseMinuteOfDay(entry.TimeSlots[i+1])
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidWindow, entry.TimeSlots[i], entry.TimeSlots[i+1])
		}
		windows = append(windows, Window{StartMin: start, EndMin: end})
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].StartMin < windows[j].StartMin })
	return windows, nil
}

// ValidateWeek checks a full weekly configuration without resolving any date,
// so malformed hours are rejected before they are ever persisted.
func ValidateWeek(hours []WeekdayHours) error {
	for _, h := range hours {
		if !h.Open || len(h.TimeSlots) == 0 {
			continue
		}
		if len(h.TimeSlots)%2 != 0 {
			return fmt.Errorf("%w: %s has %d entries", ErrUnpairedTimeSlots, h.Weekday, len(h.TimeSlots))
		}
		windows := make([]Window, 0, len(h.TimeSlots)/2)
		for i := 0; i < len(h.TimeSlots); i += 2 {
			start, err := ParseMinuteOfDay(h.TimeSlots[i])
			if err != nil {
				return err
			}
			end, err := ParseMinuteOfDay(h.TimeSlots[i+1])
			if err != nil {
				return err
			}
			if start >= end {
				return fmt.Errorf("%w: %s >= %s", ErrInvalidWindow, h.TimeSlots[i], h.TimeSlots[i+1])
			}
			windows = append(windows, Window{StartMin: start, EndMin: end})
		}
		sort.Slice(windows, func(i, j int) bool { return windows[i].StartMin < windows[j].StartMin })
		for i := 1; i < len(windows); i++ {
			if windows[i].StartMin < windows[i-1].EndMin {
				return fmt.Errorf("%w: %s", ErrOverlappingWindows, h.Weekday)
			}
		}
	}
	return nil
}

// ParseMinuteOfDay parses an "HH:mm" string into minutes from midnight.
func ParseMinuteOfDay(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return hour*60 + minute, nil
}

// FormatMinuteOfDay renders minutes from midnight back to "HH:mm".
func FormatMinuteOfDay(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func hoursForWeekday(hours []WeekdayHours, wd time.Weekday) (WeekdayHours, bool) {
	for _, h := range hours {
		if h.Weekday == wd {
			return h, true
		}
	}
	return WeekdayHours{}, false
}

func defaultWeekdayHours(wd time.Weekday) WeekdayHours {
	if wd == time.Saturday || wd == time.Sunday {
		return WeekdayHours{Weekday: wd, Open: false}
	}
	return WeekdayHours{
		Weekday:   wd,
		Open:      true,
		TimeSlots: []string{"08:00", "17:30"},
	}
}
