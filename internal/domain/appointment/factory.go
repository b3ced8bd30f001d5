package appointment

import (
	"errors"
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrTooFarAhead = errors.New("start date is beyond the booking horizon")

// Factory assembles a bookable appointment from the client's service
// selection, deriving the occupied interval from the services' stacked
// durations and buffers and enforcing the advance-notice policy.
type Factory struct {
	clock  clock.Clock
	policy schedule.BookingPolicy
}

func NewFactory(clk clock.Clock, policy schedule.BookingPolicy) *Factory {
	return &Factory{clock: clk, policy: policy}
}

func (f *Factory) CreateAppointment(
	client Client,
	start time.Time,
	services []catalog.Service,
	note string,
) (*Appointment, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	now := f.clock.Now()
	totalMinutes := catalog.TotalDurationMinutes(services)
	slot, err := NewTimeSlot(start, start.Add(time.Duration(totalMinutes)*time.Minute))
	if err != nil {
		return nil, err
	}
	if err := slot.ValidateStartAt(f.policy.EarliestBookableAt(now)); err != nil {
		return nil, err
	}
	if dayOf(start).After(f.policy.LatestBookableDate(now)) {
		return nil, ErrTooFarAhead
	}

	price, err := NewMoney(catalog.TotalPriceCents(services))
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]uuid.UUID, len(services))
	for i, svc := range services {
		serviceIDs[i] = svc.ID()
	}

	return NewAppointment(client, slot, serviceIDs, price, note)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
