package usecase

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/storage"
	"shareit/pkg/log"
)

// UserFinder resolves the acting user.
type UserFinder interface {
	Detail(ctx context.Context, id int64) (model.User, error)
}

// RequestFinder looks up the item request a new listing answers.
type RequestFinder interface {
	GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error)
}

// BookingSummary yields the owner's view of an item's bookings around now.
type BookingSummary interface {
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
}

// CommentFinder lists comments grouped by item, oldest first.
type CommentFinder interface {
	ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]model.Comment, error)
}

type implUseCase struct {
	repo     repository.Repository
	txm      storage.TxManager
	users    UserFinder
	requests RequestFinder
	bookings BookingSummary
	comments CommentFinder
	l        log.Logger
	now      func() time.Time
}

// New creates the catalog UseCase.
func New(
	repo repository.Repository,
	txm storage.TxManager,
	users UserFinder,
	requests RequestFinder,
	bookings BookingSummary,
	comments CommentFinder,
	l log.Logger,
) item.UseCase {
	return &implUseCase{
		repo:     repo,
		txm:      txm,
		users:    users,
		requests: requests,
		bookings: bookings,
		comments: comments,
		l:        l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
