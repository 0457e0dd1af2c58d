package comment

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create adds a comment. The author must have a booking of the item that
	// already ended.
	Create(ctx context.Context, sc model.Scope, input CreateCommentInput) (model.Comment, error)
	// ListByItem returns an item's comments, oldest first.
	ListByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
	// ListByItems groups comments by item id, oldest first within each item.
	ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]model.Comment, error)
}
