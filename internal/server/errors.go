// Package server provides the HTTP REST API for the labor marketplace.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/laborlink/internal/eligibility"
	"github.com/jonathan/laborlink/internal/wage"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrJobNotFound indicates the posting does not exist
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrForbidden indicates the caller lacks the role or ownership an
// operation requires
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return e.Reason
}

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
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		noUser      *ErrUserNotFound
		noJob       *ErrJobNotFound
		forbidden   *ErrForbidden
		validation  *ErrValidation

		alreadyApplied *eligibility.ErrAlreadyApplied
		weeklyLimit    *eligibility.ErrWeeklyLimitExceeded
		jobFull        *eligibility.ErrJobFull
		unavailable    *eligibility.ErrJobUnavailable
		belowMinimum   *wage.ErrBelowMinimum
	)

	switch {
	case errors.As(err, &emailExists), errors.As(err, &alreadyApplied), errors.As(err, &jobFull):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &noUser), errors.As(err, &noJob):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &unavailable):
		return http.StatusGone
	case errors.As(err, &weeklyLimit), errors.As(err, &belowMinimum):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
