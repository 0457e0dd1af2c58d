package usecase

import (
	"context"
	"time"

	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/internal/request/repository"
	"shareit/pkg/log"
)

// UserFinder resolves the acting user.
type UserFinder interface {
	Detail(ctx context.Context, id int64) (model.User, error)
}

// ItemFinder lists the items answering each request id.
type ItemFinder interface {
	ItemsByRequests(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error)
}

type implUseCase struct {
	repo  repository.Repository
	users UserFinder
	items ItemFinder
	l     log.Logger
	now   func() time.Time
}

// New creates the request board UseCase.
func New(repo repository.Repository, users UserFinder, items ItemFinder, l log.Logger) request.UseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		items: items,
		l:     l,
		now:   func() time.Time { return time.Now().UTC() },
	}
}
