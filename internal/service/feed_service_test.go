package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/mocks"
	"pusaka-newsletter/internal/service"
)

var feedConfig = service.FeedConfig{
	Title:       "Pusaka Newsletter",
	Link:        "https://pusaka.example.com/",
	Description: "Latest published articles",
	Author:      "Pusaka Editorial",
	Size:        5,
}

func TestFeedService_Render(t *testing.T) {
	ctx := context.Background()
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	article := *articleIn(domain.ArticleStatusPublished)
	article.PublishedAt = &published
	article.Excerpt = "Rice fields after the rain."

	listed := func(repo *mocks.MockArticleRepository) {
		repo.EXPECT().
			List(mock.Anything, domain.ArticleFilter{Status: domain.ArticleStatusPublished, Limit: 5}).
			Return([]domain.Article{article}, 1, nil)
	}

	t.Run("rss", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		listed(repo)

		out, err := service.NewFeedService(repo, feedConfig).Render(ctx, service.FeedRSS)

		require.NoError(t, err)
		assert.Contains(t, out, "<rss")
		assert.Contains(t, out, "<title>Harvest Notes</title>")
		assert.Contains(t, out, "https://pusaka.example.com/articles/harvest-notes")
	})

	t.Run("atom", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		listed(repo)

		out, err := service.NewFeedService(repo, feedConfig).Render(ctx, service.FeedAtom)

		require.NoError(t, err)
		assert.Contains(t, out, "http://www.w3.org/2005/Atom")
		assert.Contains(t, out, "Harvest Notes")
	})

	t.Run("unknown format", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)

		_, err := service.NewFeedService(repo, feedConfig).Render(ctx, "json")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
