package memory

import (
	"context"
	"sort"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
	"shareit/internal/storage/memory"
)

type implRepository struct {
	db *memory.DB
}

// New creates an in-memory Repository for item requests.
func New(db *memory.DB) repo.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	return r.db.Requests.Insert(func(id int64) model.ItemRequest {
		return model.ItemRequest{
			ID:          id,
			Description: opt.Description,
			RequesterID: opt.RequesterID,
			Created:     opt.Created,
		}
	}), nil
}

func (r *implRepository) GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	ir, _ := r.db.Requests.Get(id)
	return ir, nil
}

func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	rows := r.db.Requests.Select(func(ir model.ItemRequest) bool {
		if opt.RequesterID != 0 && ir.RequesterID != opt.RequesterID {
			return false
		}
		if opt.ExcludeRequesterID != 0 && ir.RequesterID == opt.ExcludeRequesterID {
			return false
		}
		return true
	})
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Created.Equal(rows[j].Created) {
			return rows[i].Created.After(rows[j].Created)
		}
		return rows[i].ID > rows[j].ID
	})
	return memory.Window(rows, opt.Offset, opt.Limit), nil
}
