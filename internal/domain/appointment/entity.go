package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoServices        = errors.New("appointment must include at least one service")
	ErrAlreadyTerminal   = errors.New("appointment is already in a terminal status")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrNotStartedYet     = errors.New("appointment has not started yet")
	ErrCancelAfterStart  = errors.New("appointment can no longer be canceled")
)

type Appointment struct {
	id         uuid.UUID
	client     Client
	slot       TimeSlot
	serviceIDs []uuid.UUID
	status     Status
	price      Money
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppointment(client Client, slot TimeSlot, serviceIDs []uuid.UUID, price Money, note string) (*Appointment, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}
	return &Appointment{
		id:         uuid.New(),
		client:     client,
		slot:       slot,
		serviceIDs: serviceIDs,
		status:     StatusConfirmed,
		price:      price,
		note:       note,
	}, nil
}

func ReconstructAppointment(
	id uuid.UUID,
	client Client,
	slot TimeSlot,
	serviceIDs []uuid.UUID,
	status Status,
	price Money,
	note string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		client:     client,
		slot:       slot,
		serviceIDs: serviceIDs,
		status:     status,
		price:      price,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel frees the slot. Only future, non-terminal appointments can be
// canceled; once the start time has passed the outcome is completed or
// no-show, never canceled.
func (a *Appointment) Cancel(now time.Time) error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !now.Before(a.slot.Start()) {
		return ErrCancelAfterStart
	}
	a.status = StatusCanceled
	return nil
}

// Complete records that the appointment took place.
func (a *Appointment) Complete(now time.Time) error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if now.Before(a.slot.Start()) {
		return ErrNotStartedYet
	}
	a.status = StatusCompleted
	return nil
}

// MarkNoShow records that the client did not turn up.
func (a *Appointment) MarkNoShow(now time.Time) error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if now.Before(a.slot.Start()) {
		return ErrNotStartedYet
	}
	a.status = StatusNoShow
	return nil
}

func (a *Appointment) BlocksAvailability() bool {
	return a.status.Blocks()
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) ClientInfo() Client      { return a.client }
func (a *Appointment) Slot() TimeSlot          { return a.slot }
func (a *Appointment) ServiceIDs() []uuid.UUID { return a.serviceIDs }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Price() Money            { return a.price }
func (a *Appointment) Note() string            { return a.note }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
