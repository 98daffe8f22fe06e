package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// SessionService owns the token → user mapping and drives authentication.
type SessionService interface {
	// Login verifies the credentials and returns a fresh opaque session
	// token. Multiple concurrent sessions per user are permitted.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout destroys the token's session. Unknown tokens are a no-op:
	// logout is idempotent.
	Logout(ctx context.Context, token string)
	// Resolve returns the user a token was issued to, or
	// domain.ErrInvalidSession.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	// RequireRole resolves the session and additionally fails with
	// domain.ErrForbidden when the user does not hold the given role.
	RequireRole(ctx context.Context, token string, role domain.Role) (*domain.User, error)
}
