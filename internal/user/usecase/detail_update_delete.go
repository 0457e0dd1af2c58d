package usecase

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Detail returns a user by id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// List returns every registered user.
func (uc *implUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

// Update applies a partial update. Empty fields keep the stored value.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (model.User, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.User{}, err
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  coalesce(input.Name, existing.Name),
		Email: coalesce(input.Email, existing.Email),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailAlreadyExists
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Delete removes a user by id.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}
