// Package common defines shared constants and sentinel errors used across
// client and server layers of taskvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Conflict errors surfaced by uniqueness checks.
	ErrorEmailExists    = errors.New("email already exists")
	ErrorTitleNotUnique = errors.New("title must be unique")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
