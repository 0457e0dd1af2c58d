package repository

import (
	"context"
	"time"

	"shareit/internal/model"
)

// Repository is the data store of the booking engine. Bookings come back with
// their item and booker joined in, even when the item was soft-deleted.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	// GetOneBooking returns a zero Booking (ID == 0) when nothing matches.
	GetOneBooking(ctx context.Context, id int64) (model.Booking, error)
	// UpdateBookingStatus writes the status when the stored version still equals
	// ExpectedVersion and bumps the version. Otherwise ErrVersionMismatch.
	UpdateBookingStatus(ctx context.Context, opt UpdateStatusOptions) (model.Booking, error)
	// ListBookings returns bookings ordered by start desc, id desc.
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)

	GetLastBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error)
	GetNextBooking(ctx context.Context, itemID int64, now time.Time) (model.Booking, error)
	ExistsCompletedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}
