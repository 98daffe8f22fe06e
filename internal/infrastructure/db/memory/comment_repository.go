package memory

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// CommentRepository implements ports.CommentRepository on the shared Store.
type CommentRepository struct {
	store *Store
}

func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{store: store}
}

// ListByPost returns the post's comments in creation order.
func (r *CommentRepository) ListByPost(_ context.Context, postID string) ([]domain.Comment, error) {
	r.store.commentsMu.RLock()
	defer r.store.commentsMu.RUnlock()

	var out []domain.Comment
	for i := range r.store.comments {
		if r.store.comments[i].PostID == postID {
			out = append(out, r.store.comments[i])
		}
	}
	return out, nil
}

// Create appends a comment.
func (r *CommentRepository) Create(_ context.Context, comment *domain.Comment) error {
	r.store.commentsMu.Lock()
	defer r.store.commentsMu.Unlock()

	r.store.comments = append(r.store.comments, *comment)
	return nil
}
