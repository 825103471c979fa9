package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "solvency-backend/internal/domain/submission"
)

// writeDomainError maps core errors onto the API status codes:
// validation 400, unknown id 404, decided-twice 409, everything else
// (persistence) 500. Nothing is swallowed.
func writeDomainError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Reason}},
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "submission not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "submission already decided"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
