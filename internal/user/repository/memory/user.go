package memory

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/storage/memory"
	repo "shareit/internal/user/repository"
)

type implRepository struct {
	db *memory.DB
}

// New creates an in-memory Repository for the user domain.
func New(db *memory.DB) repo.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u, ok := r.db.Users.InsertUnless(
		func(existing model.User) bool { return existing.Email == opt.Email },
		func(id int64) model.User { return model.User{ID: id, Name: opt.Name, Email: opt.Email} },
	)
	if !ok {
		return model.User{}, repo.ErrDuplicateEmail
	}
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	matches := r.db.Users.Select(func(u model.User) bool {
		if opt.ID != 0 && u.ID != opt.ID {
			return false
		}
		if opt.Email != "" && u.Email != opt.Email {
			return false
		}
		return true
	})
	if len(matches) == 0 {
		return model.User{}, nil
	}
	return matches[0], nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	return r.db.Users.Select(nil), nil
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	u, err := r.db.Users.UpdateUnless(opt.ID,
		func(other model.User) bool { return other.Email == opt.Email },
		func(u *model.User) error {
			u.Name = opt.Name
			u.Email = opt.Email
			return nil
		},
	)
	switch {
	case errors.Is(err, memory.ErrNoRow):
		return model.User{}, nil
	case errors.Is(err, memory.ErrConflict):
		return model.User{}, repo.ErrDuplicateEmail
	}
	return u, err
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.db.DeleteUser(ctx, id)
}
