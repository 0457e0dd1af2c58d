package http

import (
	"errors"
	"net/http"

	"shareit/internal/booking"
	pkgErrors "shareit/pkg/errors"
)

var (
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	errMissingDates = pkgErrors.NewHTTPError(http.StatusBadRequest, "start and end are required")
)

// mapError translates the booking taxonomy into HTTP statuses. Forbidden is
// always 403: an existing booking is never hidden behind a 404.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrItemNotFound),
		errors.Is(err, booking.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, booking.ErrSelfBooking),
		errors.Is(err, booking.ErrNotItemOwner),
		errors.Is(err, booking.ErrNotParticipant):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, booking.ErrInvalidDates),
		errors.Is(err, booking.ErrInvalidPage),
		errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrAlreadyApproved),
		errors.Is(err, booking.ErrUnsupportedState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, booking.ErrVersionConflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return err
	}
}
