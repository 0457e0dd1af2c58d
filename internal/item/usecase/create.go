package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Create lists a new item owned by the acting user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateItemInput) (model.Item, error) {
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return model.Item{}, err
	}

	if input.RequestID != nil {
		ir, err := uc.requests.GetOneRequest(ctx, *input.RequestID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneRequest: %v", err)
			return model.Item{}, err
		}
		if ir.ID == 0 {
			return model.Item{}, item.ErrRequestNotFound
		}
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		OwnerID:     sc.UserID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return model.Item{}, err
	}
	return it, nil
}
