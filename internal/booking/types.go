package booking

import (
	"time"

	"shareit/internal/model"
)

// CreateBookingInput asks for an item over [Start, End].
type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// UpdateStatusInput is the owner's decision on a booking.
type UpdateStatusInput struct {
	ID       int64
	Approved bool
}

// ListInput selects and pages bookings. State is the raw query keyword.
type ListInput struct {
	State string
	Page  model.Page
}
