package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDuration = errors.New("duration must be positive")

// Slot is a bookable start instant; the end is implied by the requested
// duration.
type Slot struct {
	Start time.Time
}

// BookedInterval is an already-committed appointment's interval. Canceled
// appointments stay in the snapshot but never block a candidate.
type BookedInterval struct {
	Interval
	Canceled bool
}

// ResolveInput carries one query's caller-owned snapshots. The engine holds
// no state of its own; identical inputs and an identical Now always produce
// an identical, identically ordered result.
type ResolveInput struct {
	// Date is midnight of the queried day in the business's location.
	Date            time.Time
	DurationMinutes int
	Hours           []WeekdayHours
	TimeOff         []TimeOffPeriod
	Booked          []BookedInterval
	Now             time.Time
}

// Resolver computes the ordered bookable start times for a date. It performs
// no I/O and is safe for concurrent use; results are a read-time snapshot and
// the write path must still recheck at commit.
type Resolver struct {
	calendar *Calendar
	policy   BookingPolicy
}

func NewResolver(calendar *Calendar, policy BookingPolicy) *Resolver {
	return &Resolver{calendar: calendar, policy: policy}
}

func (r *Resolver) Policy() BookingPolicy {
	return r.policy
}

// Resolve returns the ascending bookable slots for the input. An empty result
// is a valid "fully booked" outcome, not an error.
func (r *Resolver) Resolve(in ResolveInput) ([]Slot, error) {
	if in.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if dateOf(in.Date).After(r.policy.LatestBookableDate(in.Now)) {
		return nil, nil
	}

	windows, err := r.calendar.WindowsForDate(in.Hours, in.Date)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}

	earliest := r.policy.EarliestBookableAt(in.Now)
	duration := time.Duration(in.DurationMinutes) * time.Minute

	var slots []Slot
	for _, c := range CandidateStarts(windows, r.policy.SlotGranularityMinutes) {
		start := in.Date.Add(time.Duration(c) * time.Minute)
		if start.Before(earliest) {
			continue
		}
		// The booking must end inside the window that contains its start; it
		// may not straddle the gap between disjoint windows.
		if !fitsContainingWindow(windows, c, in.DurationMinutes) {
			continue
		}
		candidate := Interval{Start: start, End: start.Add(duration)}
		if overlapsBooked(candidate, in.Booked) {
			continue
		}
		if overlapsTimeOff(candidate, in.TimeOff) {
			continue
		}
		slots = append(slots, Slot{Start: start})
	}
	return slots, nil
}

func fitsContainingWindow(windows []Window, startMin, durationMin int) bool {
	for _, w := range windows {
		if startMin >= w.StartMin && startMin < w.EndMin {
			return startMin+durationMin <= w.EndMin
		}
	}
	return false
}

func overlapsBooked(candidate Interval, booked []BookedInterval) bool {
	for _, b := range booked {
		if b.Canceled {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}

func overlapsTimeOff(candidate Interval, periods []TimeOffPeriod) bool {
	for _, p := range periods {
		if !p.Active {
			continue
		}
		for _, occ := range OccurrencesInRange(p, candidate.Start, candidate.End) {
			if occ.Overlaps(candidate) {
				return true
			}
		}
	}
	return false
}
