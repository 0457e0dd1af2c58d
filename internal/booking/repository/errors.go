package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert booking")
	ErrFailedToGet     = errors.New("failed to get booking")
	ErrFailedToList    = errors.New("failed to list bookings")
	ErrFailedToUpdate  = errors.New("failed to update booking")
	ErrVersionMismatch = errors.New("booking version mismatch")
)
