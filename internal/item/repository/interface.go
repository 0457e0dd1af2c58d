package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of the catalog. Soft-deleted items are
// invisible to every read.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero Item (ID == 0) when nothing matches.
	GetOneItem(ctx context.Context, id int64) (model.Item, error)
	// ListItems returns items ordered by id.
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, opt DeleteItemOptions) error
}
