package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create posts a new request on behalf of the acting user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateRequestInput) (request.RequestDetail, error) {
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return request.RequestDetail{}, err
	}

	ir, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: input.Description,
		RequesterID: sc.UserID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return request.RequestDetail{}, err
	}
	return request.RequestDetail{Request: ir, Items: []model.Item{}}, nil
}

// ListOwn returns the acting user's requests with their items.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) ([]request.RequestDetail, error) {
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequesterID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, rows)
}

// ListOthers returns a page of requests posted by other users.
func (uc *implUseCase) ListOthers(ctx context.Context, sc model.Scope, page model.Page) ([]request.RequestDetail, error) {
	if err := page.Validate(); err != nil {
		return nil, request.ErrInvalidPage
	}
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{
		ExcludeRequesterID: sc.UserID,
		Limit:              page.Limit(),
		Offset:             page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, rows)
}

// Detail returns one request with its items. Any existing user may look.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.RequestDetail, error) {
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return request.RequestDetail{}, err
	}

	ir, err := uc.repo.GetOneRequest(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
		return request.RequestDetail{}, err
	}
	if ir.ID == 0 {
		return request.RequestDetail{}, request.ErrRequestNotFound
	}

	details, err := uc.attachItems(ctx, []model.ItemRequest{ir})
	if err != nil {
		return request.RequestDetail{}, err
	}
	return details[0], nil
}
