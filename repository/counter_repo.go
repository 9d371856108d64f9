package repository

import "context"

// CounterRepository owns the per-branch sequences.
type CounterRepository interface {
	// IncrementCounter atomically adds one to the (branch, entity, field) counter,
	// creating it at zero first if absent, and returns the new value.
	IncrementCounter(ctx context.Context, branchID, entity, field string) (int64, error)

	// GetCounter returns the current value and whether the row exists.
	GetCounter(ctx context.Context, branchID, entity, field string) (int64, bool, error)
}
