package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/repository"
)

// Feed formats.
const (
	FeedRSS  = "rss"
	FeedAtom = "atom"
)

// FeedConfig describes the channel of the public feed.
type FeedConfig struct {
	Title       string
	Link        string
	Description string
	Author      string
	Size        int
}

// FeedService renders the latest published articles as a syndication feed.
type FeedService struct {
	articleRepo repository.ArticleRepository
	cfg         FeedConfig
	now         func() time.Time
}

// NewFeedService creates a new FeedService.
func NewFeedService(articleRepo repository.ArticleRepository, cfg FeedConfig) *FeedService {
	if cfg.Size <= 0 {
		cfg.Size = 20
	}
	cfg.Link = strings.TrimRight(cfg.Link, "/")
	return &FeedService{
		articleRepo: articleRepo,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Render returns the feed as RSS 2.0 or Atom.
func (s *FeedService) Render(ctx context.Context, format string) (string, error) {
	if format != "" && format != FeedRSS && format != FeedAtom {
		return "", domain.NewValidationError("format", "must be rss or atom")
	}

	articles, _, err := s.articleRepo.List(ctx, domain.ArticleFilter{
		Status: domain.ArticleStatusPublished,
		Limit:  s.cfg.Size,
	})
	if err != nil {
		return "", fmt.Errorf("list published articles: %w", err)
	}

	feed := &feeds.Feed{
		Title:       s.cfg.Title,
		Link:        &feeds.Link{Href: s.cfg.Link},
		Description: s.cfg.Description,
		Author:      &feeds.Author{Name: s.cfg.Author},
		Created:     s.now(),
	}
	if len(articles) > 0 && articles[0].PublishedAt != nil {
		feed.Updated = *articles[0].PublishedAt
	}

	for _, a := range articles {
		link := fmt.Sprintf("%s/articles/%s", s.cfg.Link, a.Slug)
		item := &feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: a.Excerpt,
			Created:     a.CreatedAt,
			Updated:     a.UpdatedAt,
		}
		if a.PublishedAt != nil {
			item.Created = *a.PublishedAt
		}
		feed.Items = append(feed.Items, item)
	}

	var out string
	if format == FeedAtom {
		out, err = feed.ToAtom()
	} else {
		out, err = feed.ToRss()
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate feed: %w", err)
	}
	return out, nil
}
