package comment

import "errors"

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoCompletedBooking = errors.New("only users who finished a booking of the item can comment on it")
)
