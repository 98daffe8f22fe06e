package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/api/metrics"
	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

// ForumService implements forum listing and creation.
type ForumService struct {
	repo   ports.ForumRepository
	logger zerolog.Logger
}

func NewForumService(repo ports.ForumRepository, logger zerolog.Logger) *ForumService {
	return &ForumService{repo: repo, logger: logger}
}

func (s *ForumService) ListForums(ctx context.Context) ([]domain.Forum, error) {
	return s.repo.List(ctx)
}

func (s *ForumService) GetForum(ctx context.Context, slug string) (*domain.Forum, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// CreateForum opens a new forum. The category must be one of the fixed set;
// slug uniqueness is enforced by the repository.
func (s *ForumService) CreateForum(ctx context.Context, input ports.CreateForumInput) (*domain.Forum, error) {
	category := domain.Category(input.Category)
	if !category.Valid() {
		return nil, domain.ErrUnknownCategory
	}

	forum := &domain.Forum{
		ID:          uuid.NewString(),
		Slug:        input.Slug,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
	}

	if err := s.repo.Create(ctx, forum); err != nil {
		return nil, err
	}

	metrics.ForumsCreatedTotal.Inc()
	s.logger.Info().Str("slug", forum.Slug).Str("category", input.Category).Msg("forum created")

	return forum, nil
}
