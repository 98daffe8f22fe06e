package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// CreateForumInput carries the data needed to open a new forum.
type CreateForumInput struct {
	Slug        string
	Title       string
	Description string
	Category    string
}

// ForumService defines use-case operations for forums.
type ForumService interface {
	ListForums(ctx context.Context) ([]domain.Forum, error)
	GetForum(ctx context.Context, slug string) (*domain.Forum, error)
	CreateForum(ctx context.Context, input CreateForumInput) (*domain.Forum, error)
}
