package booking

import (
	"context"
	"errors"
	"time"

	"parcelbook/logger"
	"parcelbook/metrics"
	"parcelbook/models"
	"parcelbook/repository"

	"github.com/google/uuid"
)

// Lifecycle events that can produce a ledger entry. Each is posted at most once per booking.
const (
	EventBooked    = "booked"
	EventDelivered = "delivered"
	EventCancelled = "cancelled"
)

// LedgerPoster appends the transactions that follow from booking lifecycle changes.
type LedgerPoster struct {
	Transactions repository.TransactionRepository
	Now          func() time.Time
}

func NewLedgerPoster(transactions repository.TransactionRepository) *LedgerPoster {
	return &LedgerPoster{Transactions: transactions, Now: time.Now}
}

// PostCreationLedger credits the origin branch for a prepaid booking.
func (p *LedgerPoster) PostCreationLedger(ctx context.Context, b *models.Booking) error {
	if b.PaymentType != models.PaymentPaid {
		return nil
	}
	return p.post(ctx, b, b.FromBranchID, models.Credit, EventBooked, "Booking revenue LR "+b.LRNumber)
}

// PostStatusChangeLedger posts the entry implied by moving b from oldStatus to newStatus:
// collection of a To Pay booking on delivery, or reversal of a Paid booking on cancellation.
// Every other change is a no-op.
func (p *LedgerPoster) PostStatusChangeLedger(ctx context.Context, b *models.Booking, oldStatus, newStatus models.BookingStatus) error {
	switch {
	case newStatus == models.StatusDelivered && oldStatus != models.StatusDelivered && b.PaymentType == models.PaymentToPay:
		return p.post(ctx, b, b.ToBranchID, models.Credit, EventDelivered, "Delivery collection LR "+b.LRNumber)
	case newStatus == models.StatusCancelled && oldStatus != models.StatusCancelled && b.PaymentType == models.PaymentPaid:
		return p.post(ctx, b, b.FromBranchID, models.Debit, EventCancelled, "Booking reversal LR "+b.LRNumber)
	}
	return nil
}

func (p *LedgerPoster) post(ctx context.Context, b *models.Booking, branchID string, txType models.TransactionType, event, description string) error {
	bookingID := b.ID
	key := IdempotencyKey(b.ID, event)

	tx := &models.Transaction{
		ID:             uuid.NewString(),
		BranchID:       branchID,
		Type:           txType,
		Amount:         b.Costs.Total,
		Description:    description,
		BookingID:      &bookingID,
		IdempotencyKey: &key,
		CreatedAt:      p.Now().UTC(),
	}

	err := p.Transactions.AppendTransaction(ctx, tx)
	if errors.Is(err, repository.ErrDuplicateIdempotencyKey) {
		logger.Warn("ledger entry " + key + " already posted, skipping")
		metrics.LedgerDuplicates.WithLabelValues(event).Inc()
		return nil
	}
	if err != nil {
		return persistence("append transaction", err)
	}
	metrics.LedgerPosts.WithLabelValues(string(txType), event).Inc()
	return nil
}

func IdempotencyKey(bookingID, event string) string {
	return bookingID + ":" + event
}
