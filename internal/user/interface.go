package user

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (model.User, error)
	Update(ctx context.Context, input UpdateUserInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
	Detail(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
