package ports

import (
	"context"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/pkg/pagination"
)

// ListPostsInput carries all query parameters for the paginated post listing.
type ListPostsInput struct {
	ForumSlug string
	Page      int // 1-based
	PageSize  int
}

// CreatePostInput carries the data needed to open a new post in a forum.
type CreatePostInput struct {
	ForumSlug string
	Title     string
	Content   string
	Tags      []string
	AuthorID  string
}

// PostService defines use-case operations for posts.
type PostService interface {
	// ListPosts returns one page of the forum's posts ordered by ascending
	// post number.
	ListPosts(ctx context.Context, input ListPostsInput) (*pagination.PageResult[domain.Post], error)
	GetPost(ctx context.Context, forumSlug string, number int) (*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
}
