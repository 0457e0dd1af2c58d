package repository

import (
	"time"

	"shareit/internal/model"
)

// CreateBookingOptions holds parameters for inserting a new booking.
type CreateBookingOptions struct {
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   model.BookingStatus
}

// UpdateStatusOptions is a versioned status write.
type UpdateStatusOptions struct {
	ID              int64
	Status          model.BookingStatus
	ExpectedVersion int64
}

// Window bounds bookings in time. Nil bounds do not filter.
type Window struct {
	StartAtOrBefore *time.Time
	EndAtOrAfter    *time.Time
	StartAfter      *time.Time
	EndBefore       *time.Time
}

// ListBookingsOptions filters and pages bookings. Exactly one of BookerID and
// OwnerID is expected. Limit 0 means no limit.
type ListBookingsOptions struct {
	BookerID int64
	OwnerID  int64
	Window   Window
	Status   model.BookingStatus
	Limit    int
	Offset   int
}
