package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// CreateCommentInput carries the data needed to attach a comment to a post.
type CreateCommentInput struct {
	ForumSlug  string
	PostNumber int
	Content    string
	AuthorID   string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	// ListComments returns the post's comments in creation order.
	ListComments(ctx context.Context, forumSlug string, postNumber int) ([]domain.Comment, error)
	CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
}
