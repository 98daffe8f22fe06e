package memory

import (
	"context"
	"sort"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// PostRepository implements ports.PostRepository on the shared Store.
type PostRepository struct {
	store *Store
}

func NewPostRepository(store *Store) *PostRepository {
	return &PostRepository{store: store}
}

// ListByForum returns the forum's posts ordered by ascending post number.
func (r *PostRepository) ListByForum(_ context.Context, forumID string) ([]domain.Post, error) {
	r.store.postsMu.RLock()
	defer r.store.postsMu.RUnlock()

	var out []domain.Post
	for i := range r.store.posts {
		if r.store.posts[i].ForumID == forumID {
			out = append(out, r.store.posts[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// FindByNumber looks up a post by its per-forum number.
func (r *PostRepository) FindByNumber(_ context.Context, forumID string, number int) (*domain.Post, error) {
	r.store.postsMu.RLock()
	defer r.store.postsMu.RUnlock()

	for i := range r.store.posts {
		if r.store.posts[i].ForumID == forumID && r.store.posts[i].Number == number {
			p := r.store.posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// Create appends a post and assigns its number. The read of the current
// maximum and the append happen under one write lock, so numbers within a
// forum stay dense and sequential even with concurrent creators.
func (r *PostRepository) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.store.postsMu.Lock()
	defer r.store.postsMu.Unlock()

	max := 0
	for i := range r.store.posts {
		if r.store.posts[i].ForumID == post.ForumID && r.store.posts[i].Number > max {
			max = r.store.posts[i].Number
		}
	}
	created := *post
	created.Number = max + 1
	r.store.posts = append(r.store.posts, created)
	return &created, nil
}
