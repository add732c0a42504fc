package services

import "errors"

// Sentinel errors classifying failures for the HTTP layer. Validation
// errors are rejected before any store access; conflict errors must not
// be retried automatically by the caller.
var (
	// Validation
	ErrInvalidTime  = errors.New("invalid time: expected HH:mm")
	ErrInvalidStake = errors.New("stake outside allowed bounds")
	ErrUnknownItem  = errors.New("unknown item type")

	// Not found
	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")

	// Conflict
	ErrCourseFinished      = errors.New("course already finished")
	ErrDuplicateBet        = errors.New("bet already placed on this course")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrItemNotOwned        = errors.New("item not available in inventory")
	ErrEmailTaken          = errors.New("email already registered")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
)
