package schedule

import (
	"time"

	"github.com/google/uuid"
)

type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "none"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// TimeOffPeriod is an admin-declared unavailability period. For recurring
// periods, StartTime anchors the first occurrence: its date fixes the weekday
// (weekly) or day-of-month (monthly) used for matching, and its time of day
// together with EndTime-StartTime fixes each occurrence's window.
type TimeOffPeriod struct {
	ID            uuid.UUID
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	Recurring     bool
	Pattern       RecurrencePattern
	RecurrenceEnd *time.Time
	Active        bool
}

// OccurrencesInRange expands the period into the concrete intervals that
// intersect [from, to). Non-recurring periods yield at most their own
// interval. Monthly periods anchored on day 29-31 skip months that lack that
// day; they are never clamped to the month's last day.
func OccurrencesInRange(p TimeOffPeriod, from, to time.Time) []Interval {
	if !to.After(from) || !p.EndTime.After(p.StartTime) {
		return nil
	}

	if !p.Recurring || p.Pattern == RecurrenceNone {
		own := Interval{Start: p.StartTime, End: p.EndTime}
		if own.Overlaps(Interval{Start: from, End: to}) {
			return []Interval{own}
		}
		return nil
	}

	queried := Interval{Start: from, End: to}
	origin := dateOf(p.StartTime)
	offset := p.StartTime.Sub(origin)
	duration := p.EndTime.Sub(p.StartTime)

	limit := to
	if p.RecurrenceEnd != nil && p.RecurrenceEnd.Before(limit) {
		limit = *p.RecurrenceEnd
	}

	var out []Interval
	collect := func(anchor time.Time) {
		start := anchor.Add(offset)
		occ := Interval{Start: start, End: start.Add(duration)}
		if occ.Overlaps(queried) {
			out = append(out, occ)
		}
	}

	switch p.Pattern {
	case RecurrenceDaily:
		for d := fastForward(origin, from, duration, 1); !d.After(limit); d = d.AddDate(0, 0, 1) {
			collect(d)
		}
	case RecurrenceWeekly:
		for d := fastForward(origin, from, duration, 7); !d.After(limit); d = d.AddDate(0, 0, 7) {
			collect(d)
		}
	case RecurrenceMonthly:
		day := origin.Day()
		loc := origin.Location()
		for first := time.Date(origin.Year(), origin.Month(), 1, 0, 0, 0, 0, loc); !first.After(limit); first = first.AddDate(0, 1, 0) {
			if day > daysInMonth(first) {
				continue
			}
			anchor := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
			if anchor.Before(origin) || anchor.After(limit) {
				continue
			}
			collect(anchor)
		}
	}
	return out
}

// IsBlockedAt reports whether a single instant falls inside any occurrence.
// Full-interval checks must expand the candidate's whole [start, end) range
// instead, since a booking can run into a blocked window that its start
// precedes.
func IsBlockedAt(p TimeOffPeriod, at time.Time) bool {
	for _, occ := range OccurrencesInRange(p, at, at.Add(time.Nanosecond)) {
		if occ.Contains(at) {
			return true
		}
	}
	return false
}

// fastForward advances a daily/weekly anchor walk close to the queried range
// so old anchors don't cost a full scan. It backs off far enough that an
// occurrence spanning midnight into the range is still visited, and stays on
// the origin's step grid.
func fastForward(origin, from time.Time, duration time.Duration, stepDays int) time.Time {
	if !from.After(origin) {
		return origin
	}
	back := int(duration/(24*time.Hour)) + 1
	skip := int(from.Sub(origin)/(24*time.Hour)) - back
	if skip <= 0 {
		return origin
	}
	skip -= skip % stepDays
	return origin.AddDate(0, 0, skip)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
