package http

import (
	"errors"
	"net/http"

	"caretask/internal/extraction"
	pkgErrors "caretask/pkg/errors"
)

var errMessageTooShort = pkgErrors.NewHTTPError(http.StatusBadRequest,
	"message must be at least 20 characters")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, extraction.ErrLocalPipeline):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
