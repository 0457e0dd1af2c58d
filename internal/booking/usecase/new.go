package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
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

type implUseCase struct {
	repo     repository.Repository
	txm      storage.TxManager
	users    UserFinder
	items    ItemFinder
	calendar booking.CalendarPublisher
	l        log.Logger
	now      func() time.Time
}

// New creates the booking UseCase. calendar may be nil.
func New(
	repo repository.Repository,
	txm storage.TxManager,
	users UserFinder,
	items ItemFinder,
	calendar booking.CalendarPublisher,
	l log.Logger,
) booking.UseCase {
	return &implUseCase{
		repo:     repo,
		txm:      txm,
		users:    users,
		items:    items,
		calendar: calendar,
		l:        l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
