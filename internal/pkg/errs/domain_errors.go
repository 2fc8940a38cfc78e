package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Import/export errors
	ErrImportFormat = errors.New("import payload is not a sequence of records")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid password")

	// Persistence errors
	ErrPersistence = errors.New("persistence failure")
)
