package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/api/metrics"
	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

// CommentService implements comment listing and creation on a post.
type CommentService struct {
	forums   ports.ForumRepository
	posts    ports.PostRepository
	comments ports.CommentRepository
	logger   zerolog.Logger
}

func NewCommentService(
	forums ports.ForumRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{forums: forums, posts: posts, comments: comments, logger: logger}
}

// resolvePost walks slug → forum → post number, so every comment operation
// fails with the appropriate not-found error before touching the comments.
func (s *CommentService) resolvePost(ctx context.Context, forumSlug string, postNumber int) (*domain.Post, error) {
	forum, err := s.forums.FindBySlug(ctx, forumSlug)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByNumber(ctx, forum.ID, postNumber)
}

// ListComments returns the post's comments in creation order.
func (s *CommentService) ListComments(ctx context.Context, forumSlug string, postNumber int) ([]domain.Comment, error) {
	post, err := s.resolvePost(ctx, forumSlug, postNumber)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, post.ID)
}

func (s *CommentService) CreateComment(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	post, err := s.resolvePost(ctx, input.ForumSlug, input.PostNumber)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Str("post", post.ID).Msg("failed to create comment")
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	s.logger.Info().Str("forum", input.ForumSlug).Int("post", input.PostNumber).Msg("comment created")

	return comment, nil
}
