package http

import (
	"errors"
	"net/http"

	"caretask/internal/task"
	pkgErrors "caretask/pkg/errors"
)

var (
	errMissingID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyText),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidCategory),
		errors.Is(err, task.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
