// Package server exposes the portal engine over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/navigation"
	"github.com/jonathan/placement-portal/internal/portal"
	"github.com/jonathan/placement-portal/internal/profile"
	"github.com/jonathan/placement-portal/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalid    *session.ErrInvalidCredentials
		mismatch   *session.ErrRoleMismatch
		denied     *navigation.ErrNavigationDenied
		validation *ErrValidation
		fields     validator.ValidationErrors
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &mismatch), errors.Is(err, portal.ErrNoSession):
		return http.StatusUnauthorized
	case errors.As(err, &denied), errors.Is(err, profile.ErrProfileUnavailable):
		return http.StatusForbidden
	case errors.Is(err, catalog.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &fields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage flattens the first validator failure for the response body.
func validationMessage(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return (&ErrValidation{Field: fe.Field(), Message: fe.Tag()}).Error()
	}
	return err.Error()
}
