package repository

import (
	"context"
	"time"

	"parcelbook/models"
)

// BookingRepository persists bookings. There is no delete: cancellation is a status.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingByLR(ctx context.Context, lrNumber string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)

	// UpdateBooking writes the mutable fields. The LR number and origin are never rewritten.
	UpdateBooking(ctx context.Context, booking *models.Booking) error

	// MarkStaleBookings moves bookings in status from, created before cutoff, to status to.
	MarkStaleBookings(ctx context.Context, from, to models.BookingStatus, cutoff time.Time) (int64, error)

	UpdatePDFInfo(ctx context.Context, id string, path string, createdAt time.Time) error
}
