package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Create books an item for the acting user. New bookings start as WAITING.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateBookingInput) (model.Booking, error) {
	var b model.Booking
	err := uc.txm.RunInTx(ctx, func(ctx context.Context) error {
		it, err := uc.items.GetOneItem(ctx, input.ItemID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
			return err
		}
		if it.ID == 0 {
			return booking.ErrItemNotFound
		}
		if !it.Available {
			return booking.ErrItemUnavailable
		}
		if model.IsOwner(sc.UserID, it) {
			return booking.ErrSelfBooking
		}
		if !input.End.After(input.Start) {
			return booking.ErrInvalidDates
		}
		if _, err := uc.requireUser(ctx, sc.UserID); err != nil {
			return err
		}

		b, err = uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
			Start:    input.Start.UTC(),
			End:      input.End.UTC(),
			ItemID:   it.ID,
			BookerID: sc.UserID,
			Status:   model.BookingStatusWaiting,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}
