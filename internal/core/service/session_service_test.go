package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/infrastructure/db/memory"
)

func newSessionSvc() *SessionService {
	store := memory.NewStore()
	memory.Seed(store, 1)
	return NewSessionService(memory.NewUserRepository(store), zerolog.Nop())
}

func TestSessionService_LoginAndResolve(t *testing.T) {
	svc := newSessionSvc()
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if len(token) != 32 {
		t.Fatalf("expected a 128-bit hex token, got %d chars", len(token))
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	resolved, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Username != "admin" {
		t.Fatalf("resolved wrong user: %s", resolved.Username)
	}
}

func TestSessionService_LoginWrongPassword(t *testing.T) {
	svc := newSessionSvc()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("bad credentials must map to the auth kind, got %v", err)
	}
}

func TestSessionService_LoginUnknownUserSameError(t *testing.T) {
	svc := newSessionSvc()

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username must not be distinguishable: got %v", err)
	}
}

func TestSessionService_LogoutIsIdempotent(t *testing.T) {
	svc := newSessionSvc()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "user1", "user1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(ctx, token)
	if _, err := svc.Resolve(ctx, token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}

	// Second logout of the same token is a no-op.
	svc.Logout(ctx, token)
	svc.Logout(ctx, "never-existed")
}

func TestSessionService_ResolveUnknownToken(t *testing.T) {
	svc := newSessionSvc()

	if _, err := svc.Resolve(context.Background(), "bogus"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("empty token must fail, got %v", err)
	}
}

func TestSessionService_RequireRole(t *testing.T) {
	svc := newSessionSvc()
	ctx := context.Background()

	adminToken, _, _ := svc.Login(ctx, "admin", "admin")
	userToken, _, _ := svc.Login(ctx, "user1", "user1")

	if _, err := svc.RequireRole(ctx, adminToken, domain.RoleAdmin); err != nil {
		t.Fatalf("admin should pass the admin gate: %v", err)
	}

	_, err := svc.RequireRole(ctx, userToken, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.RequireRole(ctx, "bogus", domain.RoleAdmin); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("unknown token resolves before the role check, got %v", err)
	}
}

func TestSessionService_MultipleSessionsPerUser(t *testing.T) {
	svc := newSessionSvc()
	ctx := context.Background()

	t1, _, _ := svc.Login(ctx, "alice", "alice")
	t2, _, _ := svc.Login(ctx, "alice", "alice")
	if t1 == t2 {
		t.Fatalf("each login must mint a fresh token")
	}

	if _, err := svc.Resolve(ctx, t1); err != nil {
		t.Fatalf("first session should survive a second login: %v", err)
	}
	if _, err := svc.Resolve(ctx, t2); err != nil {
		t.Fatalf("second session invalid: %v", err)
	}

	// Logging out one session leaves the other alive.
	svc.Logout(ctx, t1)
	if _, err := svc.Resolve(ctx, t2); err != nil {
		t.Fatalf("logout of one token must not kill the other: %v", err)
	}
}
