package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/api/metrics"
	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

// tokenBytes gives 128 bits of entropy per token. Even though this is a
// mock backend, guessable tokens would allow trivial session hijacking on a
// shared dev environment.
const tokenBytes = 16

// SessionService owns the token → session mapping. A token maps to exactly
// one user and is never reassigned; sessions live until explicit logout.
type SessionService struct {
	users  ports.UserRepository
	logger zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionService(users ports.UserRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{
		users:    users,
		logger:   logger,
		sessions: make(map[string]domain.Session),
	}
}

// Login verifies the credentials and registers a fresh session. The same
// error covers unknown usernames and wrong passwords, so the response does
// not reveal which usernames exist.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || user.Password != password {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	s.sessions[token] = domain.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()
	s.logger.Info().Str("username", username).Msg("session created")

	return token, user, nil
}

// Logout destroys the token's session. Unknown tokens are a no-op: logout
// is idempotent.
func (s *SessionService) Logout(_ context.Context, token string) {
	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if existed {
		metrics.SessionsActive.Dec()
	}
}

// Resolve returns the user the token was issued to. The user is re-read
// from the store so role and password changes take effect immediately.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidSession
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	return user, nil
}

// RequireRole resolves the session and enforces the role gate used by
// admin-only operations.
func (s *SessionService) RequireRole(ctx context.Context, token string, role domain.Role) (*domain.User, error) {
	user, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// generateToken returns an opaque hex token from crypto/rand.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
