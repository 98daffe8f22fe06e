package memory

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on the shared Store.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// List returns all users in creation order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.store.usersMu.RLock()
	defer r.store.usersMu.RUnlock()

	out := make([]domain.User, len(r.store.users))
	copy(out, r.store.users)
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.store.usersMu.RLock()
	defer r.store.usersMu.RUnlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByUsername looks up a user by username (case-sensitive exact match).
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.usersMu.RLock()
	defer r.store.usersMu.RUnlock()

	for i := range r.store.users {
		if r.store.users[i].Username == username {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UpdatePassword replaces the stored password for the given user. The
// current-password check and the write share one critical section.
func (r *UserRepository) UpdatePassword(_ context.Context, id, current, next string) error {
	r.store.usersMu.Lock()
	defer r.store.usersMu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			if r.store.users[i].Password != current {
				return domain.ErrPasswordMismatch
			}
			r.store.users[i].Password = next
			return nil
		}
	}
	return domain.ErrUserNotFound
}
