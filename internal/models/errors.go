package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Service-level error set. Repositories translate driver failures into these
// sentinels so that callers can branch with errors.Is instead of sniffing
// error messages.
var (
	ErrMissingSlug       = errors.New("slug is required")
	ErrInvalidSlugFormat = errors.New("slug must be lowercase alphanumeric tokens separated by single hyphens")
	ErrEventNotFound     = errors.New("event not found")
	ErrDuplicateSlug     = errors.New("an event with this slug already exists")

	ErrInvalidDateFormat = errors.New("date must be a valid calendar date")
	ErrInvalidTimeFormat = errors.New("time must match HH:MM in 24-hour format")
	ErrEmptyAgenda       = errors.New("agenda must contain at least one item")
	ErrEmptyTags         = errors.New("tags must contain at least one tag")

	ErrMissingEventID       = errors.New("event id is required")
	ErrMissingEmail         = errors.New("email is required")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrInvalidEventIDFormat = errors.New("invalid event id format")
	ErrAlreadyBooked        = errors.New("this email has already booked this event")

	ErrStoreUnavailable = errors.New("document store unavailable")
)

// IsUnavailable reports whether err stems from a connection or timeout
// problem with the store rather than a query-level failure.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrStoreUnavailable) || mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}

// IsValidationError reports whether err belongs to the input-validation
// family, i.e. the caller sent a malformed or incomplete request.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingSlug, ErrInvalidSlugFormat,
		ErrInvalidDateFormat, ErrInvalidTimeFormat,
		ErrEmptyAgenda, ErrEmptyTags,
		ErrMissingEventID, ErrMissingEmail,
		ErrInvalidEmailFormat, ErrInvalidEventIDFormat,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
