package model

import "time"

// ItemRequest is a user's wish for an item nobody listed yet.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}
