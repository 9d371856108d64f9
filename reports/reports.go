package reports

import (
	"context"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/shopspring/decimal"
)

type Service struct {
	Bookings     repository.BookingRepository
	Transactions repository.TransactionRepository
}

func NewService(bookings repository.BookingRepository, transactions repository.TransactionRepository) *Service {
	return &Service{Bookings: bookings, Transactions: transactions}
}

// Summary aggregates one branch (or every branch when BranchID is empty) over a period.
type Summary struct {
	BranchID         string                       `json:"branch_id,omitempty"`
	Period           Period                       `json:"period"`
	Bookings         int                          `json:"bookings"`
	ByStatus         map[models.BookingStatus]int `json:"by_status"`
	PaidRevenue      decimal.Decimal              `json:"paid_revenue"`
	ToPayOutstanding decimal.Decimal              `json:"to_pay_outstanding"`
	Credits          decimal.Decimal              `json:"credits"`
	Debits           decimal.Decimal              `json:"debits"`
	Net              decimal.Decimal              `json:"net"`
}

// BookingsReport lists bookings created in p that the branch sends or receives.
func (s *Service) BookingsReport(ctx context.Context, branchID string, p Period) ([]*models.Booking, error) {
	return s.Bookings.ListBookings(ctx, models.BookingFilter{BranchID: branchID, From: &p.From, To: &p.To})
}

// DeliveriesReport lists bookings delivered at the branch during p, whenever they were booked.
func (s *Service) DeliveriesReport(ctx context.Context, branchID string, p Period) ([]*models.Booking, error) {
	delivered, err := s.Bookings.ListBookings(ctx, models.BookingFilter{ToBranchID: branchID, Status: models.StatusDelivered})
	if err != nil {
		return nil, err
	}
	out := []*models.Booking{}
	for _, b := range delivered {
		if b.Delivery.DeliveredAt != nil && p.Contains(*b.Delivery.DeliveredAt) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) LedgerReport(ctx context.Context, branchID string, p Period) ([]*models.Transaction, error) {
	return s.Transactions.ListTransactions(ctx, models.TransactionFilter{BranchID: branchID, From: &p.From, To: &p.To})
}

func (s *Service) SummaryReport(ctx context.Context, branchID string, p Period) (*Summary, error) {
	bookings, err := s.BookingsReport(ctx, branchID, p)
	if err != nil {
		return nil, err
	}
	txs, err := s.LedgerReport(ctx, branchID, p)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		BranchID:         branchID,
		Period:           p,
		Bookings:         len(bookings),
		ByStatus:         make(map[models.BookingStatus]int),
		PaidRevenue:      decimal.Zero,
		ToPayOutstanding: decimal.Zero,
	}
	for _, b := range bookings {
		sum.ByStatus[b.Status]++
		if b.Status == models.StatusCancelled {
			continue
		}
		switch {
		case b.PaymentType == models.PaymentPaid && (branchID == "" || b.FromBranchID == branchID):
			sum.PaidRevenue = sum.PaidRevenue.Add(b.Costs.Total)
		case b.PaymentType == models.PaymentToPay && b.Status != models.StatusDelivered &&
			(branchID == "" || b.ToBranchID == branchID):
			sum.ToPayOutstanding = sum.ToPayOutstanding.Add(b.Costs.Total)
		}
	}

	bal := models.NewBranchBalance(branchID, txs)
	sum.Credits, sum.Debits, sum.Net = bal.Credits, bal.Debits, bal.Net
	return sum, nil
}
