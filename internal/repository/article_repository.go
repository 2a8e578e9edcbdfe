package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pusaka-newsletter/internal/domain"
)

const uniqueViolation = "23505"

const articleColumns = `id, title, content, excerpt, slug, status, featured, read_time,
	meta_title, meta_description, edition_id, author_id, version, created_at, updated_at, published_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Excerpt, &a.Slug, &a.Status, &a.Featured, &a.ReadTime,
		&a.MetaTitle, &a.MetaDescription, &a.EditionID, &a.AuthorID, &a.Version, &a.CreatedAt, &a.UpdatedAt, &a.PublishedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new article. A duplicate slug yields domain.ErrConflict.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, content, excerpt, slug, status, featured, read_time,
			meta_title, meta_description, edition_id, author_id, version, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, a.ID, a.Title, a.Content, a.Excerpt, a.Slug, a.Status, a.Featured, a.ReadTime,
		a.MetaTitle, a.MetaDescription, a.EditionID, a.AuthorID, a.Version, a.CreatedAt, a.UpdatedAt, a.PublishedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert article: slug %q already exists: %w", a.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by ID.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// GetBySlug retrieves an article by slug.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return a, nil
}

// SlugExists reports whether an article already uses slug.
func (r *PostgresArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check article slug: %w", err)
	}
	return exists, nil
}

func buildArticleWhere(filter domain.ArticleFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.AuthorID != "" {
		add("author_id = $%d", filter.AuthorID)
	}
	if filter.EditionID != "" {
		add("edition_id = $%d", filter.EditionID)
	}
	if filter.Featured != nil {
		add("featured = $%d", *filter.Featured)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func articleOrder(filter domain.ArticleFilter) string {
	if filter.Status == domain.ArticleStatusPublished {
		return " ORDER BY published_at DESC, id"
	}
	if filter.Status == domain.ArticleStatusUnderReview {
		// review queue: oldest submission first
		return " ORDER BY updated_at ASC, id"
	}
	return " ORDER BY updated_at DESC, id"
}

// List returns a page of articles matching filter and the total match count.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	where, args := buildArticleWhere(filter)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + where + articleOrder(filter)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, total, nil
}

// Update writes the editable fields and the status. The row must still be at
// a.Version; on success a.Version and a.UpdatedAt are refreshed.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $3, content = $4, excerpt = $5, slug = $6, status = $7, featured = $8, read_time = $9,
			meta_title = $10, meta_description = $11, edition_id = $12, updated_at = $13, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`, a.ID, a.Version, a.Title, a.Content, a.Excerpt, a.Slug, a.Status, a.Featured, a.ReadTime,
		a.MetaTitle, a.MetaDescription, a.EditionID, a.UpdatedAt).Scan(&a.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update article %s: %w", a.ID, domain.ErrConflict)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update article: slug %q already exists: %w", a.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Transition locks the article row, checks it is still in t.From at t.Version
// and applies the new status together with the optional review note.
func (r *PostgresArticleRepository) Transition(ctx context.Context, t domain.ArticleTransition) (*domain.Article, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status domain.ArticleStatus
	var version int
	err = tx.QueryRow(ctx, `SELECT status, version FROM articles WHERE id = $1 FOR UPDATE`, t.ArticleID).Scan(&status, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("lock article %s: %w", t.ArticleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock article: %w", err)
	}
	if status != t.From || version != t.Version {
		return nil, fmt.Errorf("article %s is %s at version %d, expected %s at version %d: %w",
			t.ArticleID, status, version, t.From, t.Version, domain.ErrConflict)
	}

	updated, err := scanArticle(tx.QueryRow(ctx, `
		UPDATE articles
		SET status = $2, updated_at = $3, published_at = COALESCE(published_at, $4), version = version + 1
		WHERE id = $1
		RETURNING `+articleColumns, t.ArticleID, t.To, t.At, t.PublishedAt))
	if err != nil {
		return nil, fmt.Errorf("update article status: %w", err)
	}

	if t.Review != nil {
		if err := insertReviewNote(ctx, tx, t.Review); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

func insertReviewNote(ctx context.Context, tx pgx.Tx, n *domain.ReviewNote) error {
	highlights := n.Highlights
	if highlights == nil {
		highlights = []domain.Highlight{}
	}
	payload, err := json.Marshal(highlights)
	if err != nil {
		return fmt.Errorf("marshal highlights: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO review_notes (id, article_id, reviewer_id, decision, note, highlights, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.ArticleID, n.ReviewerID, n.Decision, n.Note, payload, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review note: %w", err)
	}
	return nil
}

// Delete removes a DRAFT article that is still at version.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string, version int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1 AND version = $2 AND status = $3`,
		id, version, domain.ArticleStatusDraft)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete article %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// ListReviews returns the review history of an article, oldest first.
func (r *PostgresArticleRepository) ListReviews(ctx context.Context, articleID string) ([]domain.ReviewNote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, article_id, reviewer_id, decision, note, highlights, created_at
		FROM review_notes
		WHERE article_id = $1
		ORDER BY created_at, id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query review notes: %w", err)
	}
	defer rows.Close()

	notes := make([]domain.ReviewNote, 0)
	for rows.Next() {
		var n domain.ReviewNote
		var highlights []byte
		if err := rows.Scan(&n.ID, &n.ArticleID, &n.ReviewerID, &n.Decision, &n.Note, &highlights, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review note: %w", err)
		}
		if err := json.Unmarshal(highlights, &n.Highlights); err != nil {
			return nil, fmt.Errorf("unmarshal highlights: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review notes: %w", err)
	}
	return notes, nil
}

// StreamAll streams articles matching filter for export with O(1) memory.
// Paging fields of filter are ignored.
func (r *PostgresArticleRepository) StreamAll(ctx context.Context, filter domain.ArticleFilter, callback func(domain.Article) error) error {
	where, args := buildArticleWhere(filter)
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles`+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return fmt.Errorf("scan article: %w", err)
		}

		if err := callback(*a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}
