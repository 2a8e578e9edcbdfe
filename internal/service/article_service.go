package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pusaka-newsletter/internal/content"
	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/metrics"
	"pusaka-newsletter/internal/repository"
	"pusaka-newsletter/internal/workflow"
)

const (
	// ExcerptLength is the length in runes of a generated article excerpt.
	ExcerptLength = 200

	// maxSlugAttempts bounds the numeric suffixes tried when a slug is taken.
	maxSlugAttempts = 100

	fallbackArticleSlug = "article"
	entityArticle       = "article"
)

// ArticleService implements the editorial workflow of articles.
type ArticleService struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new DRAFT article authored by actor.
func (s *ArticleService) Create(ctx context.Context, actor domain.Actor, in domain.ArticleInput) (*domain.Article, error) {
	if err := workflow.CanCreateArticle(actor); err != nil {
		return nil, err
	}

	base := content.Slugify(in.Slug)
	if base == "" {
		base = content.Slugify(in.Title)
	}
	slug, err := uniqueSlug(ctx, base, fallbackArticleSlug, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	now := s.now()
	article := &domain.Article{
		ID:        uuid.NewString(),
		Slug:      slug,
		Status:    domain.ArticleStatusDraft,
		AuthorID:  actor.UserID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyArticleInput(article, in)

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	logger.WithActor(actor).InfoContext(ctx, "Article created",
		slog.String("article_id", article.ID),
		slog.String("slug", article.Slug),
	)
	return article, nil
}

// Update edits the content of a DRAFT or REJECTED article. A rejected article returns
// to DRAFT once edited. version 0 skips the optimistic version check.
func (s *ArticleService) Update(ctx context.Context, actor domain.Actor, id string, in domain.ArticleInput, version int) (*domain.Article, error) {
	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if version > 0 && version != article.Version {
		return nil, fmt.Errorf("article %s is at version %d: %w", id, article.Version, domain.ErrConflict)
	}
	if err := workflow.CanEditArticle(article, actor); err != nil {
		return nil, err
	}

	if in.Slug != "" {
		if slug := content.Slugify(in.Slug); slug != article.Slug {
			slug, err = uniqueSlug(ctx, slug, fallbackArticleSlug, s.repo.SlugExists)
			if err != nil {
				return nil, err
			}
			article.Slug = slug
		}
	}

	from := article.Status
	applyArticleInput(article, in)
	article.Status = domain.ArticleStatusDraft
	article.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	if from == domain.ArticleStatusRejected {
		metrics.ObserveTransition(entityArticle, string(from), string(domain.ArticleStatusDraft), metrics.ResultApplied)
		logger.WithActor(actor).InfoContext(ctx, "Rejected article returned to draft by edit",
			slog.String("article_id", article.ID),
		)
	}
	return article, nil
}

// Get returns an article regardless of status.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.load(ctx, id)
}

// GetPublishedBySlug returns a PUBLISHED article. Any other status reads as not found.
func (s *ArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil || article.Status != domain.ArticleStatusPublished {
		return nil, fmt.Errorf("article %q: %w", slug, domain.ErrNotFound)
	}
	return article, nil
}

// List returns a page of articles and the total number of matches.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

// UpdateStatus moves an article to target. Approval through this path records an
// APPROVED review note without text; rejection needs a note and so goes through Review.
func (s *ArticleService) UpdateStatus(ctx context.Context, actor domain.Actor, id string, target domain.ArticleStatus, version int) (*domain.Article, error) {
	if !domain.IsValidArticleStatus(string(target)) {
		return nil, domain.NewValidationError("status", "unknown article status")
	}

	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.AuthorizeArticle(article, target, actor); err != nil {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(target), metrics.ResultRejected)
		return nil, err
	}
	if target == domain.ArticleStatusRejected {
		return nil, domain.NewValidationError("note", "note_required_for_rejection")
	}

	var review *domain.ReviewNote
	if target == domain.ArticleStatusApproved {
		review = &domain.ReviewNote{Decision: domain.ReviewDecisionApproved, Highlights: []domain.Highlight{}}
	}
	return s.transition(ctx, actor, article, target, version, review)
}

// Review records a publisher decision on an article under review. The status change
// and the review note are written together.
func (s *ArticleService) Review(ctx context.Context, actor domain.Actor, id string, in domain.ReviewInput, version int) (*domain.Article, error) {
	if !domain.IsValidReviewDecision(string(in.Decision)) {
		return nil, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}
	if in.Decision == domain.ReviewDecisionRejected && strings.TrimSpace(in.Note) == "" {
		return nil, domain.NewValidationError("note", "note_required_for_rejection")
	}

	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	target := in.Decision.Status()
	if !workflow.ArticleTransitionAllowed(domain.ArticleStatusUnderReview, target, actor.Role) {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(target), metrics.ResultRejected)
		return nil, &workflow.TransitionError{From: string(article.Status), To: string(target), Role: actor.Role}
	}
	if article.Status != domain.ArticleStatusUnderReview {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(target), metrics.ResultConflict)
		return nil, fmt.Errorf("article %s is %s, not under review: %w", id, article.Status, domain.ErrConflict)
	}

	highlights := in.Highlights
	if highlights == nil {
		highlights = []domain.Highlight{}
	}
	review := &domain.ReviewNote{
		Decision:   in.Decision,
		Note:       strings.TrimSpace(in.Note),
		Highlights: highlights,
	}

	updated, err := s.transition(ctx, actor, article, target, version, review)
	if err != nil {
		return nil, err
	}
	metrics.ObserveReviewDecision(string(in.Decision))
	return updated, nil
}

// Archive moves an article in any status to ARCHIVED.
func (s *ArticleService) Archive(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error) {
	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status == domain.ArticleStatusArchived {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(article.Status), metrics.ResultNoop)
		return article, nil
	}
	if err := workflow.AuthorizeArticle(article, domain.ArticleStatusArchived, actor); err != nil {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(domain.ArticleStatusArchived), metrics.ResultRejected)
		return nil, err
	}
	return s.transition(ctx, actor, article, domain.ArticleStatusArchived, version, nil)
}

// Unarchive returns an archived article to DRAFT.
func (s *ArticleService) Unarchive(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error) {
	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.ArticleStatusArchived {
		return nil, fmt.Errorf("article %s is %s, not archived: %w", id, article.Status, domain.ErrConflict)
	}
	if err := workflow.AuthorizeArticle(article, domain.ArticleStatusDraft, actor); err != nil {
		metrics.ObserveTransition(entityArticle, string(article.Status), string(domain.ArticleStatusDraft), metrics.ResultRejected)
		return nil, err
	}
	return s.transition(ctx, actor, article, domain.ArticleStatusDraft, version, nil)
}

// Delete permanently removes a DRAFT article. Anything else has to be archived.
func (s *ArticleService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	article, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.CanDeleteArticle(article, actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, article.ID, article.Version); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	logger.WithActor(actor).InfoContext(ctx, "Article deleted", slog.String("article_id", article.ID))
	return nil
}

// Reviews returns the review history of an article, oldest first.
func (s *ArticleService) Reviews(ctx context.Context, id string) ([]domain.ReviewNote, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	notes, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return notes, nil
}

func (s *ArticleService) load(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return article, nil
}

// transition applies an authorized status change. version 0 uses the version just read.
func (s *ArticleService) transition(
	ctx context.Context,
	actor domain.Actor,
	article *domain.Article,
	to domain.ArticleStatus,
	version int,
	review *domain.ReviewNote,
) (*domain.Article, error) {
	from := article.Status
	log := logger.WithActor(actor).With(
		slog.String("article_id", article.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)

	if version == 0 {
		version = article.Version
	}
	if version != article.Version {
		metrics.ObserveTransition(entityArticle, string(from), string(to), metrics.ResultConflict)
		return nil, fmt.Errorf("article %s is at version %d: %w", article.ID, article.Version, domain.ErrConflict)
	}

	if workflow.IsNoop(from, to) {
		metrics.ObserveTransition(entityArticle, string(from), string(to), metrics.ResultNoop)
		log.DebugContext(ctx, "Article transition is a no-op")
		return article, nil
	}

	now := s.now()
	t := domain.ArticleTransition{
		ArticleID: article.ID,
		From:      from,
		To:        to,
		Version:   version,
		At:        now,
	}
	if to == domain.ArticleStatusPublished {
		t.PublishedAt = &now
	}
	if review != nil {
		review.ID = uuid.NewString()
		review.ArticleID = article.ID
		review.ReviewerID = actor.UserID
		review.CreatedAt = now
		t.Review = review
	}

	updated, err := s.repo.Transition(ctx, t)
	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, domain.ErrConflict) {
			result = metrics.ResultConflict
		}
		metrics.ObserveTransition(entityArticle, string(from), string(to), result)
		log.WarnContext(ctx, "Article transition failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("transition article: %w", err)
	}

	metrics.ObserveTransition(entityArticle, string(from), string(to), metrics.ResultApplied)
	log.InfoContext(ctx, "Article transitioned")
	return updated, nil
}

func applyArticleInput(a *domain.Article, in domain.ArticleInput) {
	a.Title = strings.TrimSpace(in.Title)
	a.Content = in.Content
	a.Excerpt = strings.TrimSpace(in.Excerpt)
	if a.Excerpt == "" {
		a.Excerpt = content.Excerpt(in.Content, ExcerptLength)
	}
	a.ReadTime = in.ReadTime
	if a.ReadTime <= 0 {
		a.ReadTime = content.ReadTime(in.Content)
	}
	a.Featured = in.Featured
	a.MetaTitle = in.MetaTitle
	a.MetaDescription = in.MetaDescription
	a.EditionID = in.EditionID
}

// uniqueSlug returns base, or base with the first free numeric suffix.
func uniqueSlug(ctx context.Context, base, fallback string, exists func(context.Context, string) (bool, error)) (string, error) {
	if base == "" {
		base = fallback
	}
	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			suffix := "-" + strconv.Itoa(i)
			trimmed := base
			if len(trimmed)+len(suffix) > content.MaxSlugLength {
				trimmed = strings.TrimRight(trimmed[:content.MaxSlugLength-len(suffix)], "-")
			}
			candidate = trimmed + suffix
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q: %w", base, domain.ErrConflict)
}
