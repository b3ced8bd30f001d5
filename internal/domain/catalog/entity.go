package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrServiceNameTooLong = errors.New("service name is too long (max 255 characters)")
	ErrInvalidDuration    = errors.New("service duration must be positive")
	ErrNegativeBuffer     = errors.New("service buffer cannot be negative")
	ErrNegativePrice      = errors.New("service price cannot be negative")
)

const MaxServiceNameLength = 255

// Service is one bookable offering. BufferMinutes is cleanup/turnaround time
// appended after the service; it counts toward the interval an appointment
// occupies but is not client-facing service time.
type Service struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	bufferMinutes   int
	priceCents      int64
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(name string, durationMinutes, bufferMinutes int, priceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return nil, ErrServiceNameTooLong
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if bufferMinutes < 0 {
		return nil, ErrNegativeBuffer
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:              uuid.New(),
		name:            name,
		durationMinutes: durationMinutes,
		bufferMinutes:   bufferMinutes,
		priceCents:      priceCents,
		active:          true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name string,
	durationMinutes, bufferMinutes int,
	priceCents int64,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		durationMinutes: durationMinutes,
		bufferMinutes:   bufferMinutes,
		priceCents:      priceCents,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) BufferMinutes() int   { return s.bufferMinutes }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

// TotalDurationMinutes sums service durations plus their buffers, which is
// the interval a multi-service appointment occupies on the calendar.
func TotalDurationMinutes(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.durationMinutes + s.bufferMinutes
	}
	return total
}

// TotalPriceCents sums the plain service prices. No discounting here.
func TotalPriceCents(services []Service) int64 {
	var total int64
	for _, s := range services {
		total += s.priceCents
	}
	return total
}
