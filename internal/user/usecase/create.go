package usecase

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a new user. The email must not be taken.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (model.User, error) {
	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailAlreadyExists
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return model.User{}, err
	}
	return u, nil
}
