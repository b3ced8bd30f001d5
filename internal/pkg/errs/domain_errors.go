package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Availability errors
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidConfig   = errors.New("invalid business hours configuration")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotConflict        = errors.New("slot conflict")
	ErrSlotNotAvailable    = errors.New("slot not available")
	ErrInsufficientNotice  = errors.New("insufficient advance notice")

	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceInactive = errors.New("service inactive")

	// Time-off errors
	ErrTimeOffNotFound = errors.New("time-off period not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user inactive")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
