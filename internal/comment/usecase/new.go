package usecase

import (
	"context"
	"time"

	"shareit/internal/comment"
	"shareit/internal/comment/repository"
	"shareit/internal/model"
	"shareit/internal/storage"
	"shareit/pkg/log"
)

// UserFinder resolves the acting user.
type UserFinder interface {
	Detail(ctx context.Context, id int64) (model.User, error)
}

// ItemFinder reads live items. A zero Item means absent.
type ItemFinder interface {
	GetOneItem(ctx context.Context, id int64) (model.Item, error)
}

// BookingHistory answers whether a user has finished using an item.
type BookingHistory interface {
	CompletedBookingExists(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type implUseCase struct {
	repo     repository.Repository
	txm      storage.TxManager
	users    UserFinder
	items    ItemFinder
	bookings BookingHistory
	l        log.Logger
	now      func() time.Time
}

// New creates the comment ledger UseCase.
func New(
	repo repository.Repository,
	txm storage.TxManager,
	users UserFinder,
	items ItemFinder,
	bookings BookingHistory,
	l log.Logger,
) comment.UseCase {
	return &implUseCase{
		repo:     repo,
		txm:      txm,
		users:    users,
		items:    items,
		bookings: bookings,
		l:        l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
