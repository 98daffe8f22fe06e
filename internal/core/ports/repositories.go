package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// ForumRepository defines access to the forum collection.
type ForumRepository interface {
	// List returns all forums in creation order.
	List(ctx context.Context) ([]domain.Forum, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Forum, error)
	// Create appends a forum. Fails with domain.ErrDuplicateSlug when the
	// slug is already taken (case-sensitive exact match).
	Create(ctx context.Context, forum *domain.Forum) error
}

// PostRepository defines access to the post collection.
type PostRepository interface {
	// ListByForum returns the forum's posts ordered by ascending post number.
	ListByForum(ctx context.Context, forumID string) ([]domain.Post, error)
	FindByNumber(ctx context.Context, forumID string, number int) (*domain.Post, error)
	// Create appends a post, assigning the next dense post number for the
	// owning forum atomically with respect to concurrent creators.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
}

// CommentRepository defines access to the comment collection.
type CommentRepository interface {
	// ListByPost returns the post's comments in creation order.
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
}

// UserRepository defines access to the user collection.
type UserRepository interface {
	// List returns all users in creation order.
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdatePassword swaps the user's password after verifying the current
	// one, both under the same write lock, so concurrent calls cannot race
	// past the check. Fails with domain.ErrPasswordMismatch.
	UpdatePassword(ctx context.Context, id, current, next string) error
}
