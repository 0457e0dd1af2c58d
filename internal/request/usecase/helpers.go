package usecase

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/internal/user"
)

func (uc *implUseCase) requireUser(ctx context.Context, id int64) error {
	if _, err := uc.users.Detail(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return request.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "uc.requireUser Detail: %v", err)
		return err
	}
	return nil
}

// attachItems joins every request with the items listed against it.
func (uc *implUseCase) attachItems(ctx context.Context, rows []model.ItemRequest) ([]request.RequestDetail, error) {
	ids := make([]int64, len(rows))
	for i, ir := range rows {
		ids[i] = ir.ID
	}

	byRequest := map[int64][]model.Item{}
	if len(ids) > 0 {
		var err error
		byRequest, err = uc.items.ItemsByRequests(ctx, ids)
		if err != nil {
			uc.l.Errorf(ctx, "uc.attachItems ItemsByRequests: %v", err)
			return nil, err
		}
	}

	out := make([]request.RequestDetail, len(rows))
	for i, ir := range rows {
		items := byRequest[ir.ID]
		if items == nil {
			items = []model.Item{}
		}
		out[i] = request.RequestDetail{Request: ir, Items: items}
	}
	return out, nil
}
