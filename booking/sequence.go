package booking

import (
	"context"
	"fmt"

	"parcelbook/metrics"
	"parcelbook/models"
	"parcelbook/repository"
)

const (
	BookingEntity = "Booking"
	LRNumberField = "lrNumber"
)

// SequenceAllocator issues branch-scoped LR numbers. Values for one branch are unique and
// strictly increasing under concurrent callers; a number whose booking is never stored
// is not reissued.
type SequenceAllocator struct {
	Branches repository.BranchRepository
	Counters repository.CounterRepository
}

func NewSequenceAllocator(branches repository.BranchRepository, counters repository.CounterRepository) *SequenceAllocator {
	return &SequenceAllocator{Branches: branches, Counters: counters}
}

// NextSequence returns the next booking sequence value for branchID.
func (a *SequenceAllocator) NextSequence(ctx context.Context, branchID string) (int64, error) {
	branch, err := a.activeBranch(ctx, branchID)
	if err != nil {
		return 0, err
	}
	return a.increment(ctx, branch)
}

// AllocateLRNumber consumes the next sequence value and formats it with the branch code.
func (a *SequenceAllocator) AllocateLRNumber(ctx context.Context, branchID string) (string, error) {
	branch, err := a.activeBranch(ctx, branchID)
	if err != nil {
		return "", err
	}
	seq, err := a.increment(ctx, branch)
	if err != nil {
		return "", err
	}
	return FormatLRNumber(branch.Code, seq), nil
}

func (a *SequenceAllocator) activeBranch(ctx context.Context, branchID string) (*models.Branch, error) {
	branch, err := a.Branches.GetBranch(ctx, branchID)
	if err != nil {
		return nil, persistence("load branch", err)
	}
	if branch == nil || !branch.IsActive {
		return nil, &BranchNotFoundError{BranchID: branchID}
	}
	return branch, nil
}

func (a *SequenceAllocator) increment(ctx context.Context, branch *models.Branch) (int64, error) {
	seq, err := a.Counters.IncrementCounter(ctx, branch.ID, BookingEntity, LRNumberField)
	if err != nil {
		return 0, persistence("increment counter", err)
	}
	metrics.LRNumbersAllocated.WithLabelValues(branch.Code).Inc()
	return seq, nil
}

// FormatLRNumber zero-pads seq to four digits. Wider values are printed in full.
func FormatLRNumber(code string, seq int64) string {
	return fmt.Sprintf("%s/%04d", code, seq)
}
