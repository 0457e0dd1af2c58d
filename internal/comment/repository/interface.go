package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of the comment ledger. Comments come back with
// the author's current name.
type Repository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	// ListComments returns comments ordered by created, id.
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
}
