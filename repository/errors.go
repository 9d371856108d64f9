package repository

import "errors"

var (
	// ErrDuplicateLRNumber is returned when a booking is inserted with an LR number already in use.
	ErrDuplicateLRNumber = errors.New("lr number already exists")

	// ErrDuplicateIdempotencyKey is returned when a ledger entry with the same key was already appended.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

	// ErrDuplicateBranchCode is returned when two branches share a short code.
	ErrDuplicateBranchCode = errors.New("branch code already exists")

	ErrEmailExists = errors.New("email already exists")
)

const (
	branchCollection      = "branches"
	counterCollection     = "counters"
	bookingCollection     = "bookings"
	transactionCollection = "transactions"
	userCollection        = "app_user"
	permissionCollection  = "report_permissions"
	profileCollection     = "company_profile"
)
