package domain

import "errors"

// Common domain validation errors.
var (
	// ErrInvalidAvatarURL is returned when a supplied avatar URL does not
	// look like a URL.
	ErrInvalidAvatarURL = errors.New("invalid avatar url")
)
