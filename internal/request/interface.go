package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateRequestInput) (RequestDetail, error)
	// ListOwn returns the acting user's requests, newest first.
	ListOwn(ctx context.Context, sc model.Scope) ([]RequestDetail, error)
	// ListOthers returns one page of everybody else's requests, newest first.
	ListOthers(ctx context.Context, sc model.Scope, page model.Page) ([]RequestDetail, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (RequestDetail, error)
}
