package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/metrics"
	"pusaka-newsletter/internal/repository"
	"pusaka-newsletter/internal/workflow"
)

// maxEditionArticles caps the articles loaded with a single edition.
const maxEditionArticles = 200

// EditionService manages newsletter editions.
type EditionService struct {
	repo        repository.EditionRepository
	articleRepo repository.ArticleRepository
	now         func() time.Time
}

// NewEditionService creates a new EditionService.
func NewEditionService(repo repository.EditionRepository, articleRepo repository.ArticleRepository) *EditionService {
	return &EditionService{
		repo:        repo,
		articleRepo: articleRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new edition. Editions always start unpublished.
func (s *EditionService) Create(ctx context.Context, actor domain.Actor, in domain.EditionInput) (*domain.Edition, error) {
	if err := workflow.CanCreateEdition(actor); err != nil {
		return nil, err
	}

	now := s.now()
	covers := in.CoverImages
	if covers == nil {
		covers = []string{}
	}
	edition := &domain.Edition{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		PublishDate:   in.PublishDate.UTC(),
		EditionNumber: in.EditionNumber,
		Theme:         in.Theme,
		IsPublished:   false,
		CoverImages:   covers,
		CreatedBy:     actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, edition); err != nil {
		return nil, fmt.Errorf("create edition: %w", err)
	}

	logger.WithActor(actor).InfoContext(ctx, "Edition created", slog.String("edition_id", edition.ID))
	return edition, nil
}

// List returns a page of editions.
func (s *EditionService) List(ctx context.Context, filter domain.EditionFilter) ([]domain.Edition, int, error) {
	editions, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list editions: %w", err)
	}
	return editions, total, nil
}

// Get returns an edition with the articles assigned to it.
func (s *EditionService) Get(ctx context.Context, id string) (*domain.Edition, error) {
	edition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get edition: %w", err)
	}
	if edition == nil {
		return nil, fmt.Errorf("edition %s: %w", id, domain.ErrNotFound)
	}

	articles, _, err := s.articleRepo.List(ctx, domain.ArticleFilter{EditionID: id, Limit: maxEditionArticles})
	if err != nil {
		return nil, fmt.Errorf("list edition articles: %w", err)
	}
	edition.Articles = articles
	return edition, nil
}

// SetPublished publishes or unpublishes an edition.
func (s *EditionService) SetPublished(ctx context.Context, actor domain.Actor, id string, published bool) (*domain.Edition, error) {
	if err := workflow.CanPublishEdition(actor); err != nil {
		return nil, err
	}

	edition, err := s.repo.SetPublished(ctx, id, published, s.now())
	if err != nil {
		return nil, fmt.Errorf("set edition published: %w", err)
	}
	if edition == nil {
		return nil, fmt.Errorf("edition %s: %w", id, domain.ErrNotFound)
	}

	to := "UNPUBLISHED"
	if published {
		to = "PUBLISHED"
	}
	metrics.ObserveTransition("edition", "", to, metrics.ResultApplied)
	logger.WithActor(actor).InfoContext(ctx, "Edition publication changed",
		slog.String("edition_id", edition.ID),
		slog.Bool("is_published", edition.IsPublished),
	)
	return edition, nil
}
