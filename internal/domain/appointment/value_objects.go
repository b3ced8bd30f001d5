package appointment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidTimeSlot   = errors.New("start time must be before end time")
	ErrTooEarly          = errors.New("start time is before the earliest bookable instant")
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrClientNameTooLong = errors.New("client name is too long (max 120 characters)")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

const MaxClientNameLength = 120

// TimeSlot is the half-open interval an appointment occupies.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// ToTstzrange renders the slot as a half-open Postgres range literal, which
// is also what the appointments table's exclusion constraint operates on.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// ValidateStartAt checks the advance-notice policy: the slot must not start
// before the earliest bookable instant computed by the booking policy.
func (ts TimeSlot) ValidateStartAt(earliest time.Time) error {
	if ts.start.Before(earliest) {
		return ErrTooEarly
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Client is the guest contact a booking is made under; clients do not hold
// accounts.
type Client struct {
	name  string
	email string
	phone string
}

func NewClient(name, email, phone string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, ErrEmptyClientName
	}
	if len(name) > MaxClientNameLength {
		return Client{}, ErrClientNameTooLong
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Client{}, ErrInvalidEmail
	}
	return Client{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (c Client) Name() string  { return c.name }
func (c Client) Email() string { return c.email }
func (c Client) Phone() string { return c.phone }

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}
