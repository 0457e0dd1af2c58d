package http

import (
	"errors"
	"net/http"

	"shareit/internal/request"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request id")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, request.ErrRequestNotFound),
		errors.Is(err, request.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, request.ErrInvalidPage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
