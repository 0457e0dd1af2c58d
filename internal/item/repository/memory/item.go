package memory

import (
	"context"
	"errors"
	"strings"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/storage/memory"
)

type implRepository struct {
	db *memory.DB
}

// New creates an in-memory Repository for the catalog.
func New(db *memory.DB) repo.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	row := r.db.Items.Insert(func(id int64) memory.ItemRow {
		return memory.ItemRow{Item: model.Item{
			ID:          id,
			Name:        opt.Name,
			Description: opt.Description,
			Available:   opt.Available,
			OwnerID:     opt.OwnerID,
			RequestID:   opt.RequestID,
		}}
	})
	return row.Item, nil
}

func (r *implRepository) GetOneItem(ctx context.Context, id int64) (model.Item, error) {
	row, ok := r.db.Items.Get(id)
	if !ok || row.DeletedAt != nil {
		return model.Item{}, nil
	}
	return row.Item, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	text := strings.ToLower(opt.Text)
	requests := make(map[int64]bool, len(opt.RequestIDs))
	for _, id := range opt.RequestIDs {
		requests[id] = true
	}

	rows := r.db.Items.Select(func(row memory.ItemRow) bool {
		switch {
		case row.DeletedAt != nil:
			return false
		case opt.OwnerID != 0 && row.OwnerID != opt.OwnerID:
			return false
		case opt.AvailableOnly && !row.Available:
			return false
		case len(requests) > 0 && (row.RequestID == nil || !requests[*row.RequestID]):
			return false
		case text != "":
			return strings.Contains(strings.ToLower(row.Name), text) ||
				strings.Contains(strings.ToLower(row.Description), text)
		}
		return true
	})

	items := make([]model.Item, len(rows))
	for i, row := range rows {
		items[i] = row.Item
	}
	return memory.Window(items, opt.Offset, opt.Limit), nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	row, err := r.db.Items.Update(opt.ID, func(row *memory.ItemRow) error {
		if row.DeletedAt != nil {
			return memory.ErrNoRow
		}
		row.Name = opt.Name
		row.Description = opt.Description
		row.Available = opt.Available
		return nil
	})
	if errors.Is(err, memory.ErrNoRow) {
		return model.Item{}, nil
	}
	return row.Item, err
}

func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	_, err := r.db.Items.Update(opt.ID, func(row *memory.ItemRow) error {
		if row.DeletedAt == nil {
			at := opt.At
			row.DeletedAt = &at
		}
		return nil
	})
	if errors.Is(err, memory.ErrNoRow) {
		return nil
	}
	return err
}
