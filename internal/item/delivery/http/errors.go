package http

import (
	"errors"
	"net/http"

	"shareit/internal/item"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrUserNotFound),
		errors.Is(err, item.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, item.ErrNotOwner):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, item.ErrInvalidPage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
