package http

import (
	"errors"
	"net/http"

	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid user id")

// mapError translates use case errors into HTTP errors. Unknown errors pass
// through and end up as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
