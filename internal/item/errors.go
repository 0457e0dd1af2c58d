package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrNotOwner        = errors.New("only the owner can change an item")
	ErrInvalidPage     = errors.New("from must be >= 0 and size must be >= 1")
)
