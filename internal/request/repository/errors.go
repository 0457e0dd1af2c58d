package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert item request")
	ErrFailedToGet    = errors.New("failed to get item request")
	ErrFailedToList   = errors.New("failed to list item requests")
)
