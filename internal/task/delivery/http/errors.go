package http

import (
	"errors"
	"net/http"

	"wellness-planner/internal/task"
	pkgErrors "wellness-planner/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500 that does not leak the cause.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidReminder),
		errors.Is(err, task.ErrInvalidRule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
