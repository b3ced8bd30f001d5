package schedule

import "time"

// BookingPolicy is the advance-notice configuration. It is admin-owned and
// read-only to the engine; both methods are pure functions of the policy and
// the supplied clock reading.
type BookingPolicy struct {
	AllowSameDayBooking    bool
	MinAdvanceHours        int
	MaxAdvanceDays         int
	SlotGranularityMinutes int
}

func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		AllowSameDayBooking:    true,
		MinAdvanceHours:        2,
		MaxAdvanceDays:         90,
		SlotGranularityMinutes: 30,
	}
}

// EarliestBookableAt returns the first instant a booking may start. With
// same-day booking disabled the lead time is a flat 24 hours regardless of
// MinAdvanceHours.
func (p BookingPolicy) EarliestBookableAt(now time.Time) time.Time {
	if p.AllowSameDayBooking {
		return now.Add(time.Duration(p.MinAdvanceHours) * time.Hour)
	}
	return now.Add(24 * time.Hour)
}

// LatestBookableDate returns the last calendar date (midnight) on which a
// booking may start.
func (p BookingPolicy) LatestBookableDate(now time.Time) time.Time {
	return dateOf(now).AddDate(0, 0, p.MaxAdvanceDays)
}
