package booking

import "errors"

var (
	// not found
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")

	// forbidden
	ErrSelfBooking    = errors.New("owner cannot book own item")
	ErrNotItemOwner   = errors.New("only the item owner can approve or reject a booking")
	ErrNotParticipant = errors.New("booking is visible to its booker and the item owner only")

	// validation
	ErrInvalidDates = errors.New("booking end must be after start")
	ErrInvalidPage  = errors.New("from must be >= 0 and size must be >= 1")

	// unavailable
	ErrItemUnavailable = errors.New("item is not available for booking")

	// invalid state
	ErrAlreadyApproved = errors.New("booking is already approved")

	ErrUnsupportedState = errors.New("Unknown state")

	// conflict
	ErrVersionConflict = errors.New("booking was changed concurrently, retry")
)
