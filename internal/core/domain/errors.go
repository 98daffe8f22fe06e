package domain

import (
	"errors"
	"fmt"
)

// Error kinds. The HTTP boundary maps each kind to a status code
// (404, 409, 400, 401, 403). Specific errors wrap a kind so callers can
// match with errors.Is at either granularity.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
)

var (
	ErrForumNotFound = fmt.Errorf("forum %w", ErrNotFound)
	ErrPostNotFound  = fmt.Errorf("post %w", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)

	ErrDuplicateSlug     = fmt.Errorf("a forum with this slug %w", ErrConflict)
	ErrDuplicateUsername = fmt.Errorf("a user with this username %w", ErrConflict)

	ErrUnknownCategory   = fmt.Errorf("unknown forum category: %w", ErrValidation)
	ErrInvalidPagination = fmt.Errorf("page and page_size must be positive: %w", ErrValidation)

	ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", ErrUnauthorized)
	ErrInvalidSession     = fmt.Errorf("invalid or expired session: %w", ErrUnauthorized)
	ErrPasswordMismatch   = fmt.Errorf("current password is incorrect: %w", ErrUnauthorized)
)
