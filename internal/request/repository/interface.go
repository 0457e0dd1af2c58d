package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of the request board.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	// GetOneRequest returns a zero ItemRequest (ID == 0) when nothing matches.
	GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	// ListRequests returns requests ordered by created desc, id desc.
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.ItemRequest, error)
}
