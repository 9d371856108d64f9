package booking

import (
	"errors"
	"fmt"

	"parcelbook/models"
)

var (
	ErrBranchNotFound     = errors.New("branch not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
)

// BranchNotFoundError is returned when a branch id does not resolve to an active branch.
type BranchNotFoundError struct {
	BranchID string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %q not found or inactive", e.BranchID)
}

func (e *BranchNotFoundError) Unwrap() error { return ErrBranchNotFound }

type BookingNotFoundError struct {
	Key string
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %q not found", e.Key)
}

func (e *BookingNotFoundError) Unwrap() error { return ErrBookingNotFound }

// PersistenceError wraps a storage failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is.
func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistenceFailure, e.Err} }

type TransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsClientError reports errors caused by the request rather than the server.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrBranchNotFound)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
