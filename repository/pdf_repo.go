package repository

import (
	"context"

	"parcelbook/models"
)

// PDFRepository gathers everything printed on an LR receipt.
type PDFRepository struct {
	Bookings BookingRepository
	Branches BranchRepository
	Profile  ProfileRepository
}

func NewPDFRepository(bookings BookingRepository, branches BranchRepository, profile ProfileRepository) *PDFRepository {
	return &PDFRepository{Bookings: bookings, Branches: branches, Profile: profile}
}

// GetReceiptData returns (nil, nil) when the booking does not exist.
// A missing branch or profile leaves the corresponding field nil.
func (r *PDFRepository) GetReceiptData(ctx context.Context, bookingID string) (*models.ReceiptPDFData, error) {
	booking, err := r.Bookings.GetBooking(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, err
	}

	fromBranch, err := r.Branches.GetBranch(ctx, booking.FromBranchID)
	if err != nil {
		return nil, err
	}
	toBranch, err := r.Branches.GetBranch(ctx, booking.ToBranchID)
	if err != nil {
		return nil, err
	}
	profile, err := r.Profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ReceiptPDFData{
		Company:    profile,
		Booking:    booking,
		FromBranch: fromBranch,
		ToBranch:   toBranch,
		ItemCount:  len(booking.Items),
	}, nil
}
