package service

import (
	"context"
	"fmt"
	"log/slog"
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
	fallbackBlogSlug = "blog"
	entityBlog       = "blog"
)

// BlogService manages blog posts. Blogs have no review step.
type BlogService struct {
	repo repository.BlogRepository
	now  func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository) *BlogService {
	return &BlogService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new blog, DRAFT unless the input names a status.
func (s *BlogService) Create(ctx context.Context, actor domain.Actor, in domain.BlogInput) (*domain.Blog, error) {
	if err := workflow.CanEditBlog(actor); err != nil {
		return nil, err
	}

	status := domain.BlogStatusDraft
	if in.Status != nil {
		if err := workflow.AuthorizeBlog(domain.BlogStatusDraft, *in.Status, actor); err != nil {
			return nil, err
		}
		status = *in.Status
	}

	base := ""
	if in.Slug != nil {
		base = content.Slugify(*in.Slug)
	}
	if base == "" && in.Title != nil {
		base = content.Slugify(*in.Title)
	}
	slug, err := uniqueSlug(ctx, base, fallbackBlogSlug, s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	now := s.now()
	blog := &domain.Blog{
		ID:          uuid.NewString(),
		Slug:        slug,
		ContentType: domain.ContentTypeMarkdown,
		Status:      status,
		AuthorID:    actor.UserID,
		Tags:        []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyBlogInput(blog, in)
	if status == domain.BlogStatusPublished {
		blog.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	logger.WithActor(actor).InfoContext(ctx, "Blog created",
		slog.String("blog_id", blog.ID),
		slog.String("slug", blog.Slug),
		slog.String("status", string(blog.Status)),
	)
	return blog, nil
}

// GetBySlug returns a blog. Unpublished blogs read as not found unless includeUnpublished is set.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Blog, error) {
	blog, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil || (!includeUnpublished && blog.Status != domain.BlogStatusPublished) {
		return nil, fmt.Errorf("blog %q: %w", slug, domain.ErrNotFound)
	}
	return blog, nil
}

// List returns a page of blogs. Without includeUnpublished only PUBLISHED blogs are listed.
func (s *BlogService) List(ctx context.Context, filter domain.BlogFilter, includeUnpublished bool) ([]domain.Blog, int, error) {
	if !includeUnpublished {
		filter.Status = domain.BlogStatusPublished
	}
	blogs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, total, nil
}

// Update applies the fields present in the input, including an optional status change.
func (s *BlogService) Update(ctx context.Context, actor domain.Actor, slug string, in domain.BlogInput) (*domain.Blog, error) {
	if err := workflow.CanEditBlog(actor); err != nil {
		return nil, err
	}
	blog, err := s.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	from := blog.Status
	if in.Status != nil {
		if err := workflow.AuthorizeBlog(from, *in.Status, actor); err != nil {
			metrics.ObserveTransition(entityBlog, string(from), string(*in.Status), metrics.ResultRejected)
			return nil, err
		}
		blog.Status = *in.Status
	}

	if in.Slug != nil {
		if next := content.Slugify(*in.Slug); next != "" && next != blog.Slug {
			next, err = uniqueSlug(ctx, next, fallbackBlogSlug, s.repo.SlugExists)
			if err != nil {
				return nil, err
			}
			blog.Slug = next
		}
	}

	now := s.now()
	applyBlogInput(blog, in)
	if blog.Status == domain.BlogStatusPublished && blog.PublishedAt == nil {
		blog.PublishedAt = &now
	}
	blog.UpdatedAt = now

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	if from != blog.Status {
		metrics.ObserveTransition(entityBlog, string(from), string(blog.Status), metrics.ResultApplied)
		logger.WithActor(actor).InfoContext(ctx, "Blog transitioned",
			slog.String("blog_id", blog.ID),
			slog.String("from", string(from)),
			slog.String("to", string(blog.Status)),
		)
	}
	return blog, nil
}

// Delete removes a blog in any status once the caller has confirmed.
func (s *BlogService) Delete(ctx context.Context, actor domain.Actor, slug string, confirmed bool) error {
	if err := workflow.CanDeleteBlog(actor, confirmed); err != nil {
		return err
	}
	blog, err := s.GetBySlug(ctx, slug, true)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, blog.ID); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	logger.WithActor(actor).InfoContext(ctx, "Blog deleted", slog.String("blog_id", blog.ID))
	return nil
}

// Render returns the blog body as HTML.
func (s *BlogService) Render(blog *domain.Blog) string {
	return blogHTML(blog)
}

func applyBlogInput(b *domain.Blog, in domain.BlogInput) {
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.ContentType != nil {
		b.ContentType = *in.ContentType
	}
	if in.Content != nil {
		b.Content = *in.Content
	}
	if in.Tags != nil {
		b.Tags = in.Tags
	}

	switch {
	case in.Excerpt != nil:
		b.Excerpt = strings.TrimSpace(*in.Excerpt)
	case in.Content != nil:
		b.Excerpt = content.Excerpt(blogHTML(b), ExcerptLength)
	}
}

func blogHTML(b *domain.Blog) string {
	if b.ContentType == domain.ContentTypeMarkdown {
		return content.RenderMarkdown(b.Content)
	}
	return b.Content
}
