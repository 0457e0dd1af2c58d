package model

import "time"

// Comment is feedback left on an item by someone who has used it.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
