package booking

import (
	"context"
	"time"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateBookingInput) (model.Booking, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Booking, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error)
	// ListForBooker pages the acting user's bookings, latest start first.
	ListForBooker(ctx context.Context, sc model.Scope, input ListInput) ([]model.Booking, error)
	// ListForOwner pages bookings of the acting user's items, latest start first.
	ListForOwner(ctx context.Context, sc model.Scope, input ListInput) ([]model.Booking, error)

	// LastForItem is the non-rejected booking that ended most recently before now.
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	// NextForItem is the approved booking starting soonest after now.
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	// CompletedBookingExists reports whether bookerID had itemID booked over a
	// window that ended before now.
	CompletedBookingExists(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// CalendarPublisher mirrors approved bookings onto an external calendar.
type CalendarPublisher interface {
	Publish(ctx context.Context, b model.Booking) error
	Withdraw(ctx context.Context, b model.Booking) error
}
