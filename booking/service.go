package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelbook/metrics"
	"parcelbook/models"
	"parcelbook/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the authenticated user a service call is made on behalf of.
type Actor struct {
	UserID   string
	Role     models.Role
	BranchID string
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == models.RoleSuperAdmin
}

// CanAccess reports whether the actor may see a record touching any of branchIDs.
func (a Actor) CanAccess(branchIDs ...string) bool {
	if a.IsSuperAdmin() {
		return true
	}
	for _, id := range branchIDs {
		if id != "" && id == a.BranchID {
			return true
		}
	}
	return false
}

type CreateBookingInput struct {
	FromBranchID string               `json:"from_branch_id"`
	ToBranchID   string               `json:"to_branch_id"`
	Sender       models.Contact       `json:"sender"`
	Receiver     models.Contact       `json:"receiver"`
	Items        []models.ParcelItem  `json:"items"`
	Handling     decimal.Decimal      `json:"handling"`
	Hamali       decimal.Decimal      `json:"hamali"`
	PaymentType  models.PaymentType   `json:"payment_type"`
	Status       models.BookingStatus `json:"status,omitempty"`
	Remarks      string               `json:"remarks,omitempty"`
}

type StatusUpdateInput struct {
	Status            models.BookingStatus `json:"status"`
	CollectedByName   string               `json:"collected_by_name,omitempty"`
	CollectedByMobile string               `json:"collected_by_mobile,omitempty"`
}

type Service struct {
	Branches  repository.BranchRepository
	Bookings  repository.BookingRepository
	Allocator *SequenceAllocator
	Ledger    *LedgerPoster

	// Strict enables the transition table in status.go. Off, any status may follow any other.
	Strict bool
	Now    func() time.Time
}

func NewService(
	branches repository.BranchRepository,
	counters repository.CounterRepository,
	bookings repository.BookingRepository,
	transactions repository.TransactionRepository,
	strict bool,
) *Service {
	return &Service{
		Branches:  branches,
		Bookings:  bookings,
		Allocator: NewSequenceAllocator(branches, counters),
		Ledger:    NewLedgerPoster(transactions),
		Strict:    strict,
		Now:       time.Now,
	}
}

// ------------------------ Create ------------------------

// CreateBooking validates input, issues an LR number for the origin branch, stores the
// booking and posts its creation ledger entry. A failure after allocation leaves a gap
// in the branch's sequence. If only the ledger post fails the stored booking is returned
// together with the error.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput, actor Actor) (*models.Booking, error) {
	fromID := in.FromBranchID
	if !actor.IsSuperAdmin() {
		fromID = actor.BranchID
	}
	if err := validateCreate(fromID, in); err != nil {
		return nil, err
	}

	items, costs, err := ComputeCosts(in.Items, in.Handling, in.Hamali)
	if err != nil {
		return nil, err
	}

	dest, err := s.Branches.GetBranch(ctx, in.ToBranchID)
	if err != nil {
		return nil, persistence("load destination branch", err)
	}
	if dest == nil || !dest.IsActive {
		return nil, &BranchNotFoundError{BranchID: in.ToBranchID}
	}

	lr, err := s.Allocator.AllocateLRNumber(ctx, fromID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusBooked
	}

	b := &models.Booking{
		ID:           uuid.NewString(),
		LRNumber:     lr,
		FromBranchID: fromID,
		ToBranchID:   in.ToBranchID,
		Sender:       trimContact(in.Sender),
		Receiver:     trimContact(in.Receiver),
		Items:        items,
		Costs:        costs,
		PaymentType:  in.PaymentType,
		Status:       status,
		Remarks:      strings.TrimSpace(in.Remarks),
		CreatedBy:    actor.UserID,
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.Bookings.CreateBooking(ctx, b); err != nil {
		return nil, persistence("create booking", err)
	}

	if err := s.Ledger.PostCreationLedger(ctx, b); err != nil {
		return b, err
	}
	return b, nil
}

func validateCreate(fromID string, in CreateBookingInput) error {
	switch {
	case fromID == "":
		return &ValidationError{Field: "from_branch_id", Reason: "is required"}
	case in.ToBranchID == "":
		return &ValidationError{Field: "to_branch_id", Reason: "is required"}
	case in.ToBranchID == fromID:
		return &ValidationError{Field: "to_branch_id", Reason: "must differ from the origin branch"}
	case strings.TrimSpace(in.Sender.Name) == "":
		return &ValidationError{Field: "sender.name", Reason: "is required"}
	case strings.TrimSpace(in.Sender.Mobile) == "":
		return &ValidationError{Field: "sender.mobile", Reason: "is required"}
	case strings.TrimSpace(in.Receiver.Name) == "":
		return &ValidationError{Field: "receiver.name", Reason: "is required"}
	case strings.TrimSpace(in.Receiver.Mobile) == "":
		return &ValidationError{Field: "receiver.mobile", Reason: "is required"}
	case !in.PaymentType.Valid():
		return &ValidationError{Field: "payment_type", Reason: fmt.Sprintf("must be %q or %q", models.PaymentPaid, models.PaymentToPay)}
	case in.Status != "" && in.Status != models.StatusBooked && in.Status != models.StatusIncoming:
		return &ValidationError{Field: "status", Reason: "a new booking starts as Booked or Incoming"}
	}
	return nil
}

func trimContact(c models.Contact) models.Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Mobile = strings.TrimSpace(c.Mobile)
	c.Address = strings.TrimSpace(c.Address)
	if c.GSTIN != nil {
		g := strings.ToUpper(strings.TrimSpace(*c.GSTIN))
		if g == "" {
			c.GSTIN = nil
		} else {
			c.GSTIN = &g
		}
	}
	return c
}

// ------------------------ Update ------------------------

// UpdateStatus moves a booking to in.Status and posts any ledger entry the change implies.
func (s *Service) UpdateStatus(ctx context.Context, id string, in StatusUpdateInput, actor Actor) (*models.Booking, error) {
	if !in.Status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + string(in.Status)}
	}

	b, err := s.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	oldStatus := b.Status
	if s.Strict {
		if err := ValidateTransition(oldStatus, in.Status); err != nil {
			return nil, err
		}
	}

	b.Status = in.Status
	if in.Status == models.StatusDelivered && oldStatus != models.StatusDelivered {
		now := s.Now().UTC()
		b.Delivery = models.DeliveryInfo{
			CollectedByName:   strings.TrimSpace(in.CollectedByName),
			CollectedByMobile: strings.TrimSpace(in.CollectedByMobile),
			DeliveredAt:       &now,
		}
	}

	if err := s.Bookings.UpdateBooking(ctx, b); err != nil {
		return nil, persistence("update booking", err)
	}
	if err := s.Ledger.PostStatusChangeLedger(ctx, b, oldStatus, in.Status); err != nil {
		return b, err
	}
	return b, nil
}

// EditRemarks replaces the remarks and records the previous text in the edit history.
func (s *Service) EditRemarks(ctx context.Context, id, remarks string, actor Actor) (*models.Booking, error) {
	b, err := s.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	remarks = strings.TrimSpace(remarks)
	if remarks == b.Remarks {
		return b, nil
	}

	b.EditHistory = append(b.EditHistory, models.RemarkEdit{
		Previous: b.Remarks,
		Updated:  remarks,
		EditedBy: actor.UserID,
		EditedAt: s.Now().UTC(),
	})
	b.Remarks = remarks

	if err := s.Bookings.UpdateBooking(ctx, b); err != nil {
		return nil, persistence("update booking", err)
	}
	return b, nil
}

// SweepIncoming moves Incoming bookings created before cutoff to Pending.
func (s *Service) SweepIncoming(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := s.Bookings.MarkStaleBookings(ctx, models.StatusIncoming, models.StatusPending, cutoff)
	if err != nil {
		return 0, persistence("sweep incoming", err)
	}
	metrics.SweptBookings.Add(float64(n))
	return n, nil
}

// ------------------------ Read ------------------------

func (s *Service) GetBooking(ctx context.Context, id string, actor Actor) (*models.Booking, error) {
	return s.load(ctx, id, actor)
}

func (s *Service) GetBookingByLR(ctx context.Context, lrNumber string, actor Actor) (*models.Booking, error) {
	b, err := s.Bookings.GetBookingByLR(ctx, lrNumber)
	if err != nil {
		return nil, persistence("load booking", err)
	}
	return s.authorize(b, lrNumber, actor)
}

// ListBookings restricts branch staff to bookings their branch sends or receives.
func (s *Service) ListBookings(ctx context.Context, filter models.BookingFilter, actor Actor) ([]*models.Booking, error) {
	if !actor.IsSuperAdmin() {
		filter.BranchID = actor.BranchID
	}
	out, err := s.Bookings.ListBookings(ctx, filter)
	if err != nil {
		return nil, persistence("list bookings", err)
	}
	return out, nil
}

func (s *Service) load(ctx context.Context, id string, actor Actor) (*models.Booking, error) {
	b, err := s.Bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, persistence("load booking", err)
	}
	return s.authorize(b, id, actor)
}

func (s *Service) authorize(b *models.Booking, key string, actor Actor) (*models.Booking, error) {
	if b == nil {
		return nil, &BookingNotFoundError{Key: key}
	}
	if !actor.CanAccess(b.FromBranchID, b.ToBranchID) {
		return nil, fmt.Errorf("%w: booking %s belongs to other branches", ErrForbidden, b.LRNumber)
	}
	return b, nil
}
