package item

import "shareit/internal/model"

// CreateItemInput is a new listing. RequestID optionally answers an item request.
type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput is a partial update: blank strings and a nil Available keep
// the stored value.
type UpdateItemInput struct {
	ID          int64
	Name        string
	Description string
	Available   *bool
}

// SearchInput looks for available items by text.
type SearchInput struct {
	Text string
	Page model.Page
}

// ItemDetail is an item with its comments. LastBooking and NextBooking are
// only filled for the owner.
type ItemDetail struct {
	Item        model.Item
	LastBooking *model.Booking
	NextBooking *model.Booking
	Comments    []model.Comment
}
