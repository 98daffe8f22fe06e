package memory

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// ForumRepository implements ports.ForumRepository on the shared Store.
type ForumRepository struct {
	store *Store
}

func NewForumRepository(store *Store) *ForumRepository {
	return &ForumRepository{store: store}
}

// List returns all forums in creation order.
func (r *ForumRepository) List(_ context.Context) ([]domain.Forum, error) {
	r.store.forumsMu.RLock()
	defer r.store.forumsMu.RUnlock()

	out := make([]domain.Forum, len(r.store.forums))
	copy(out, r.store.forums)
	return out, nil
}

// FindBySlug looks up a forum by its slug (case-sensitive exact match).
func (r *ForumRepository) FindBySlug(_ context.Context, slug string) (*domain.Forum, error) {
	r.store.forumsMu.RLock()
	defer r.store.forumsMu.RUnlock()

	for i := range r.store.forums {
		if r.store.forums[i].Slug == slug {
			f := r.store.forums[i]
			return &f, nil
		}
	}
	return nil, domain.ErrForumNotFound
}

// Create appends a forum, enforcing slug uniqueness under the write lock.
func (r *ForumRepository) Create(_ context.Context, forum *domain.Forum) error {
	r.store.forumsMu.Lock()
	defer r.store.forumsMu.Unlock()

	for i := range r.store.forums {
		if r.store.forums[i].Slug == forum.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	r.store.forums = append(r.store.forums, *forum)
	return nil
}
