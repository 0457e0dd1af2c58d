package booking

import "shareit/internal/model"

// NextStatus applies an owner's decision to the current status.
//
//	WAITING  + approve -> APPROVED
//	WAITING  + reject  -> REJECTED
//	APPROVED + reject  -> REJECTED
//	APPROVED + approve -> ErrAlreadyApproved
//	REJECTED + any     -> REJECTED, unchanged
func NextStatus(current model.BookingStatus, approve bool) (model.BookingStatus, error) {
	switch current {
	case model.BookingStatusWaiting:
		if approve {
			return model.BookingStatusApproved, nil
		}
		return model.BookingStatusRejected, nil
	case model.BookingStatusApproved:
		if approve {
			return "", ErrAlreadyApproved
		}
		return model.BookingStatusRejected, nil
	default:
		return model.BookingStatusRejected, nil
	}
}
