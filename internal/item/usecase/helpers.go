package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/internal/user"
)

func coalesce(newVal, existing string) string {
	if strings.TrimSpace(newVal) != "" {
		return newVal
	}
	return existing
}

func (uc *implUseCase) requireUser(ctx context.Context, id int64) error {
	if _, err := uc.users.Detail(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return item.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "uc.requireUser Detail: %v", err)
		return err
	}
	return nil
}

// getItem returns the live item or ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

// ownedItem is getItem plus the owner check.
func (uc *implUseCase) ownedItem(ctx context.Context, sc model.Scope, id int64) (model.Item, error) {
	it, err := uc.getItem(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	if !model.IsOwner(sc.UserID, it) {
		return model.Item{}, item.ErrNotOwner
	}
	return it, nil
}

// buildDetails attaches comments to every item and, when withBookings is
// set, the last and next booking.
func (uc *implUseCase) buildDetails(ctx context.Context, items []model.Item, withBookings bool) ([]item.ItemDetail, error) {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	comments := map[int64][]model.Comment{}
	if len(ids) > 0 {
		var err error
		comments, err = uc.comments.ListByItems(ctx, ids)
		if err != nil {
			uc.l.Errorf(ctx, "uc.buildDetails ListByItems: %v", err)
			return nil, err
		}
	}

	now := uc.now()
	out := make([]item.ItemDetail, len(items))
	for i, it := range items {
		d := item.ItemDetail{Item: it, Comments: comments[it.ID]}
		if d.Comments == nil {
			d.Comments = []model.Comment{}
		}

		if withBookings {
			last, err := uc.bookings.LastForItem(ctx, it.ID, now)
			if err != nil {
				uc.l.Errorf(ctx, "uc.buildDetails LastForItem: %v", err)
				return nil, err
			}
			next, err := uc.bookings.NextForItem(ctx, it.ID, now)
			if err != nil {
				uc.l.Errorf(ctx, "uc.buildDetails NextForItem: %v", err)
				return nil, err
			}
			d.LastBooking, d.NextBooking = last, next
		}
		out[i] = d
	}
	return out, nil
}
