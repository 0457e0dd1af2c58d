package request

import "errors"

var (
	ErrRequestNotFound = errors.New("item request not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPage     = errors.New("from must be >= 0 and size must be >= 1")
)
