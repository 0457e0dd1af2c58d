package repository

import "time"

// CreateCommentOptions holds parameters for inserting a new comment.
type CreateCommentOptions struct {
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

// ListCommentsOptions selects the comments of a set of items.
type ListCommentsOptions struct {
	ItemIDs []int64
}
