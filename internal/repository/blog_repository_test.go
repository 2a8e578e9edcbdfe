package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/repository"
)

func newBlog(slug string, status domain.BlogStatus, tags ...string) *domain.Blog {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Blog{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       "Blog " + slug,
		Content:     "# Heading",
		ContentType: domain.ContentTypeMarkdown,
		Tags:        tags,
		Status:      status,
		AuthorID:    "editor-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPostgresBlogRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresBlogRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create get update delete", func(t *testing.T) {
		testDB.TruncateTables(t)
		b := newBlog("hello-world", domain.BlogStatusDraft, "go")
		require.NoError(t, repo.Create(ctx, b))

		got, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"go"}, got.Tags)
		assert.Equal(t, domain.ContentTypeMarkdown, got.ContentType)

		now := time.Now().UTC()
		got.Status = domain.BlogStatusPublished
		got.PublishedAt = &now
		got.Slug = "hello-again"
		require.NoError(t, repo.Update(ctx, got))

		old, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		assert.Nil(t, old)

		renamed, err := repo.GetBySlug(ctx, "hello-again")
		require.NoError(t, err)
		require.NotNil(t, renamed)
		assert.Equal(t, domain.BlogStatusPublished, renamed.Status)
		assert.NotNil(t, renamed.PublishedAt)

		require.NoError(t, repo.Delete(ctx, renamed.ID))
		assert.True(t, errors.Is(repo.Delete(ctx, renamed.ID), domain.ErrNotFound))
	})

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		testDB.TruncateTables(t)
		require.NoError(t, repo.Create(ctx, newBlog("same", domain.BlogStatusDraft)))
		err := repo.Create(ctx, newBlog("same", domain.BlogStatusDraft))
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("list by status and tag", func(t *testing.T) {
		testDB.TruncateTables(t)
		require.NoError(t, repo.Create(ctx, newBlog("a", domain.BlogStatusPublished, "go", "db")))
		require.NoError(t, repo.Create(ctx, newBlog("b", domain.BlogStatusPublished, "db")))
		require.NoError(t, repo.Create(ctx, newBlog("c", domain.BlogStatusDraft, "go")))

		published, total, err := repo.List(ctx, domain.BlogFilter{Status: domain.BlogStatusPublished})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, published, 2)

		tagged, total, err := repo.List(ctx, domain.BlogFilter{Tag: "go"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, tagged, 2)

		exists, err := repo.SlugExists(ctx, "c")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
