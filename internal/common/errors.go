// Package common defines shared constants and sentinel errors used across
// the PeerSphere client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrorUnavailable = errors.New("server unavailable")

	// Authorization errors (invalid, expired or missing token).
	ErrorUnauthorized = errors.New("unauthorized")

	// Resource errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors caught before any network call.
	ErrorValidation = errors.New("validation error")
)
