package handlers

import (
	"errors"
	"net/http"

	"hugolate/internal/services"
)

// statusFor maps service sentinel errors to HTTP status codes. Anything
// unclassified is a store-level failure: the whole operation is treated
// as not having happened and the caller may retry it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidTime),
		errors.Is(err, services.ErrInvalidStake),
		errors.Is(err, services.ErrUnknownItem):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCourseFinished),
		errors.Is(err, services.ErrDuplicateBet),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrItemNotOwned),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal error detail on store-level failures
func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
