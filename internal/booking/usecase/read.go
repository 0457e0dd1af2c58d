package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Detail returns a booking to its booker or to the item owner.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error) {
	if _, err := uc.requireUser(ctx, sc.UserID); err != nil {
		return model.Booking{}, err
	}

	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if !model.CanViewBooking(sc.UserID, b) {
		return model.Booking{}, booking.ErrNotParticipant
	}
	return b, nil
}

// ListForBooker lists the acting user's own bookings.
func (uc *implUseCase) ListForBooker(ctx context.Context, sc model.Scope, input booking.ListInput) ([]model.Booking, error) {
	return uc.list(ctx, sc, input, func(opt *repo.ListBookingsOptions) { opt.BookerID = sc.UserID })
}

// ListForOwner lists bookings made on the acting user's items.
func (uc *implUseCase) ListForOwner(ctx context.Context, sc model.Scope, input booking.ListInput) ([]model.Booking, error) {
	return uc.list(ctx, sc, input, func(opt *repo.ListBookingsOptions) { opt.OwnerID = sc.UserID })
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, input booking.ListInput, scope func(*repo.ListBookingsOptions)) ([]model.Booking, error) {
	if _, err := uc.requireUser(ctx, sc.UserID); err != nil {
		return nil, err
	}

	state, err := booking.ParseState(input.State)
	if err != nil {
		return nil, err
	}
	if err := input.Page.Validate(); err != nil {
		return nil, booking.ErrInvalidPage
	}

	window, status := windowFor(state, uc.now())
	opt := repo.ListBookingsOptions{
		Window: window,
		Status: status,
		Limit:  input.Page.Limit(),
		Offset: input.Page.Offset(),
	}
	scope(&opt)

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.list ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

// LastForItem returns nil when the item has no finished, non-rejected booking.
func (uc *implUseCase) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	b, err := uc.repo.GetLastBooking(ctx, itemID, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LastForItem GetLastBooking: %v", err)
		return nil, err
	}
	return optional(b), nil
}

// NextForItem returns nil when the item has no upcoming approved booking.
func (uc *implUseCase) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	b, err := uc.repo.GetNextBooking(ctx, itemID, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.NextForItem GetNextBooking: %v", err)
		return nil, err
	}
	return optional(b), nil
}

func (uc *implUseCase) CompletedBookingExists(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	ok, err := uc.repo.ExistsCompletedBooking(ctx, bookerID, itemID, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompletedBookingExists ExistsCompletedBooking: %v", err)
		return false, err
	}
	return ok, nil
}
