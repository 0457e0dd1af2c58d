package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Update changes an item. Only its owner may do so.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateItemInput) (model.Item, error) {
	var it model.Item
	err := uc.txm.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := uc.ownedItem(ctx, sc, input.ID)
		if err != nil {
			return err
		}

		available := existing.Available
		if input.Available != nil {
			available = *input.Available
		}

		it, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:          input.ID,
			Name:        coalesce(input.Name, existing.Name),
			Description: coalesce(input.Description, existing.Description),
			Available:   available,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
			return err
		}
		if it.ID == 0 {
			return item.ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// Delete soft-deletes an item. Only its owner may do so.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	return uc.txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ownedItem(ctx, sc, id); err != nil {
			return err
		}

		if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{ID: id, At: uc.now()}); err != nil {
			uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
			return err
		}
		return nil
	})
}
