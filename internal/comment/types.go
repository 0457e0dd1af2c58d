package comment

// CreateCommentInput is the body of a new comment.
type CreateCommentInput struct {
	ItemID int64
	Text   string
}
