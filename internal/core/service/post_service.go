package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/api/metrics"
	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
	"github.com/demoforums/forum-api/pkg/pagination"
)

// PostService implements post listing, lookup, and creation within a forum.
type PostService struct {
	forums ports.ForumRepository
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(forums ports.ForumRepository, posts ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{forums: forums, posts: posts, logger: logger}
}

// ListPosts returns one page of the forum's posts ordered by ascending post
// number. A page past the end yields empty items, not an error.
func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*pagination.PageResult[domain.Post], error) {
	if input.Page < 1 || input.PageSize < 1 {
		return nil, domain.ErrInvalidPagination
	}

	forum, err := s.forums.FindBySlug(ctx, input.ForumSlug)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByForum(ctx, forum.ID)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(posts, input.Page, input.PageSize)
	return &page, nil
}

func (s *PostService) GetPost(ctx context.Context, forumSlug string, number int) (*domain.Post, error) {
	forum, err := s.forums.FindBySlug(ctx, forumSlug)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByNumber(ctx, forum.ID, number)
}

// CreatePost opens a new post in the forum. The post number is assigned by
// the repository, atomically per forum.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	forum, err := s.forums.FindBySlug(ctx, input.ForumSlug)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		ForumID:   forum.ID,
		Title:     input.Title,
		Content:   input.Content,
		Tags:      tags,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("forum", input.ForumSlug).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.WithLabelValues(forum.Slug).Inc()
	s.logger.Info().Str("forum", forum.Slug).Int("number", created.Number).Msg("post created")

	return created, nil
}
