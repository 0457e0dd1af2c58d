package usecase

import (
	"context"
	"errors"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/internal/user"
)

func (uc *implUseCase) requireUser(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.users.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return model.User{}, booking.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "uc.requireUser Detail: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (uc *implUseCase) getBooking(ctx context.Context, id int64) (model.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBooking GetOneBooking: %v", err)
		return model.Booking{}, err
	}
	if b.ID == 0 {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

// windowFor turns a state into list filters evaluated at now.
func windowFor(state booking.State, now time.Time) (repo.Window, model.BookingStatus) {
	switch state {
	case booking.StateCurrent:
		return repo.Window{StartAtOrBefore: &now, EndAtOrAfter: &now}, ""
	case booking.StateFuture:
		return repo.Window{StartAfter: &now}, ""
	case booking.StatePast:
		return repo.Window{EndBefore: &now}, ""
	case booking.StateWaiting:
		return repo.Window{}, model.BookingStatusWaiting
	case booking.StateRejected:
		return repo.Window{}, model.BookingStatusRejected
	default:
		return repo.Window{}, ""
	}
}

func optional(b model.Booking) *model.Booking {
	if b.ID == 0 {
		return nil
	}
	return &b
}
