package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (model.Item, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (model.Item, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
	Detail(ctx context.Context, sc model.Scope, id int64) (ItemDetail, error)
	// ListByOwner returns one page of the acting user's items, by id.
	ListByOwner(ctx context.Context, sc model.Scope, page model.Page) ([]ItemDetail, error)
	Search(ctx context.Context, input SearchInput) ([]model.Item, error)
	// ItemsByRequests groups the live items answering each request id.
	ItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error)
}
