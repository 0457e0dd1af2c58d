package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert comment")
	ErrFailedToList   = errors.New("failed to list comments")
)
