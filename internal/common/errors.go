// Package common defines shared sentinel errors used across the layers of
// the scrapbook server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Validation errors: malformed identifier, missing required field,
	// undecodable image payload. These never reach the store.
	ErrValidation = errors.New("validation error")

	// Transport-level errors.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
