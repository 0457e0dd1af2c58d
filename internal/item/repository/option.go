package repository

import "time"

// CreateItemOptions holds parameters for inserting a new item.
type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ListItemsOptions filters and pages items. Zero fields do not filter and
// Limit 0 means no limit.
type ListItemsOptions struct {
	OwnerID int64
	// Text matches name or description, case-insensitively.
	Text          string
	AvailableOnly bool
	RequestIDs    []int64
	Limit         int
	Offset        int
}

// UpdateItemOptions holds the full new state of an item.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// DeleteItemOptions marks an item deleted at At.
type DeleteItemOptions struct {
	ID int64
	At time.Time
}
