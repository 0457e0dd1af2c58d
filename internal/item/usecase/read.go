package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns an item with its comments. The owner also sees the last and
// next booking.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.ItemDetail, error) {
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return item.ItemDetail{}, err
	}

	it, err := uc.getItem(ctx, id)
	if err != nil {
		return item.ItemDetail{}, err
	}

	details, err := uc.buildDetails(ctx, []model.Item{it}, model.IsOwner(sc.UserID, it))
	if err != nil {
		return item.ItemDetail{}, err
	}
	return details[0], nil
}

// ListByOwner returns one page of the acting user's items by id, with
// bookings and comments.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, page model.Page) ([]item.ItemDetail, error) {
	if err := page.Validate(); err != nil {
		return nil, item.ErrInvalidPage
	}
	if err := uc.requireUser(ctx, sc.UserID); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OwnerID: sc.UserID,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListItems: %v", err)
		return nil, err
	}
	return uc.buildDetails(ctx, items, true)
}

// Search finds available items whose name or description contains the text.
// Blank text finds nothing.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) ([]model.Item, error) {
	if err := input.Page.Validate(); err != nil {
		return nil, item.ErrInvalidPage
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return []model.Item{}, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Text:          text,
		AvailableOnly: true,
		Limit:         input.Page.Limit(),
		Offset:        input.Page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

// ItemsByRequests groups live items by the request they answer.
func (uc *implUseCase) ItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error) {
	out := make(map[int64][]model.Item, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{RequestIDs: requestIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ItemsByRequests ListItems: %v", err)
		return nil, err
	}
	for _, it := range items {
		if it.RequestID != nil {
			out[*it.RequestID] = append(out[*it.RequestID], it)
		}
	}
	return out, nil
}
