package usecase

import (
	"context"
	"errors"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// UpdateStatus applies the item owner's decision to a booking. The write only
// lands if nobody changed the booking since it was read. A decision that leaves
// the status as it is writes nothing.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input booking.UpdateStatusInput) (model.Booking, error) {
	var prev, updated model.Booking
	err := uc.txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.requireUser(ctx, sc.UserID); err != nil {
			return err
		}

		var err error
		prev, err = uc.getBooking(ctx, input.ID)
		if err != nil {
			return err
		}
		if !model.CanDecideBooking(sc.UserID, prev) {
			return booking.ErrNotItemOwner
		}

		next, err := booking.NextStatus(prev.Status, input.Approved)
		if err != nil {
			return err
		}
		if next == prev.Status {
			updated = prev
			return nil
		}

		updated, err = uc.repo.UpdateBookingStatus(ctx, repo.UpdateStatusOptions{
			ID:              prev.ID,
			Status:          next,
			ExpectedVersion: prev.Version,
		})
		if err != nil {
			if errors.Is(err, repo.ErrVersionMismatch) {
				return booking.ErrVersionConflict
			}
			uc.l.Errorf(ctx, "uc.UpdateStatus UpdateBookingStatus: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}

	if updated.Status != prev.Status {
		uc.syncCalendar(ctx, prev, updated)
	}
	return updated, nil
}

// syncCalendar mirrors the transition onto the calendar. Failures are only logged.
func (uc *implUseCase) syncCalendar(ctx context.Context, prev, updated model.Booking) {
	if uc.calendar == nil {
		return
	}

	switch {
	case updated.Status == model.BookingStatusApproved:
		if err := uc.calendar.Publish(ctx, updated); err != nil {
			uc.l.Warnf(ctx, "uc.syncCalendar Publish booking %d: %v", updated.ID, err)
		}
	case prev.Status == model.BookingStatusApproved && updated.Status == model.BookingStatusRejected:
		if err := uc.calendar.Withdraw(ctx, updated); err != nil {
			uc.l.Warnf(ctx, "uc.syncCalendar Withdraw booking %d: %v", updated.ID, err)
		}
	}
}
