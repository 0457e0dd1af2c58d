package http

import (
	"errors"
	"net/http"

	"shareit/internal/comment"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comment.ErrItemNotFound),
		errors.Is(err, comment.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, comment.ErrNoCompletedBooking):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
