package http

import (
	"errors"
	"net/http"

	dealDomain "github.com/blezecon/skalebitz/internal/domain/deal"
	invDomain "github.com/blezecon/skalebitz/internal/domain/investment"
	txDomain "github.com/blezecon/skalebitz/internal/domain/ledgertx"
	userDomain "github.com/blezecon/skalebitz/internal/domain/user"
	"github.com/blezecon/skalebitz/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

// statusFor maps the domain error taxonomy onto HTTP statuses. Balance and
// capacity failures are client errors (400), matching the API contract the
// frontend already handles.
func statusFor(err error) int {
	switch {
	case errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, dealDomain.ErrNotFound),
		errors.Is(err, invDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, userDomain.ErrNotInvestor):
		return http.StatusForbidden
	case errors.Is(err, userDomain.ErrInsufficientBalance),
		errors.Is(err, dealDomain.ErrCapacityExceeded),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrMissingID),
		errors.Is(err, txDomain.ErrInvalidType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func failedValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
