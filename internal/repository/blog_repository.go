package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pusaka-newsletter/internal/domain"
)

const blogColumns = `id, slug, title, content, excerpt, content_type, tags, status, author_id,
	created_at, updated_at, published_at`

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

func scanBlog(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	err := row.Scan(&b.ID, &b.Slug, &b.Title, &b.Content, &b.Excerpt, &b.ContentType, &b.Tags, &b.Status,
		&b.AuthorID, &b.CreatedAt, &b.UpdatedAt, &b.PublishedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// Create inserts a new blog. A duplicate slug yields domain.ErrConflict.
func (r *PostgresBlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blogs (id, slug, title, content, excerpt, content_type, tags, status, author_id,
			created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, b.ID, b.Slug, b.Title, b.Content, b.Excerpt, b.ContentType, tagsOrEmpty(b.Tags), b.Status, b.AuthorID,
		b.CreatedAt, b.UpdatedAt, b.PublishedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert blog: slug %q already exists: %w", b.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// GetBySlug retrieves a blog by slug.
func (r *PostgresBlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	b, err := scanBlog(r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

// SlugExists reports whether a blog already uses slug.
func (r *PostgresBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check blog slug: %w", err)
	}
	return exists, nil
}

// List returns a page of blogs, newest first, and the total match count.
func (r *PostgresBlogRepository) List(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, int, error) {
	var conds []string
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	query := `SELECT ` + blogColumns + ` FROM blogs` + where + ` ORDER BY COALESCE(published_at, created_at) DESC, id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate blogs: %w", err)
	}
	return blogs, total, nil
}

// Update overwrites all mutable fields of the blog identified by b.ID.
func (r *PostgresBlogRepository) Update(ctx context.Context, b *domain.Blog) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blogs
		SET slug = $2, title = $3, content = $4, excerpt = $5, content_type = $6, tags = $7, status = $8,
			updated_at = $9, published_at = $10
		WHERE id = $1
	`, b.ID, b.Slug, b.Title, b.Content, b.Excerpt, b.ContentType, tagsOrEmpty(b.Tags), b.Status,
		b.UpdatedAt, b.PublishedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update blog: slug %q already exists: %w", b.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update blog %s: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a blog by ID.
func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete blog %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
