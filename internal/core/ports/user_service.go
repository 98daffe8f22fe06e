package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// UserService defines use-case operations for users.
type UserService interface {
	// ListUsers returns all users in creation order; callers must rely on
	// the domain.User JSON mapping to keep passwords out of responses.
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// ChangePassword replaces the user's password after verifying the
	// current one. A mismatch fails with domain.ErrPasswordMismatch.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
