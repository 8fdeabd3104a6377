package http

import (
	"errors"

	"catalog-srv/internal/catalog"
	pkgErrors "catalog-srv/pkg/errors"
	"catalog-srv/pkg/response"
)

var (
	errInvalidFilter = pkgErrors.NewHTTPError(
		400, "Invalid filter parameters",
	)
	errInvalidEnumValue = pkgErrors.NewHTTPError(
		400, "Invalid filter value",
	)
	errInvalidRange = pkgErrors.NewHTTPError(
		400, "Filter value out of range",
	)
	errInternal = pkgErrors.NewHTTPError(
		500, response.InternalServerErrorMessage,
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidEnumValue):
		return errInvalidEnumValue
	case errors.Is(err, catalog.ErrInvalidRange):
		return errInvalidRange
	case errors.Is(err, catalog.ErrQueryFailed):
		return errInternal
	default:
		return errInternal
	}
}
