package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pusaka-newsletter/internal/domain"
)

const editionColumns = `id, title, description, publish_date, edition_number, theme, is_published,
	cover_images, created_by, created_at, updated_at`

// PostgresEditionRepository implements EditionRepository using PostgreSQL.
type PostgresEditionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEditionRepository creates a new PostgresEditionRepository.
func NewPostgresEditionRepository(pool *pgxpool.Pool) *PostgresEditionRepository {
	return &PostgresEditionRepository{pool: pool}
}

func scanEdition(row pgx.Row) (*domain.Edition, error) {
	var e domain.Edition
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.PublishDate, &e.EditionNumber, &e.Theme, &e.IsPublished,
		&e.CoverImages, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new edition. A duplicate edition number yields domain.ErrConflict.
func (r *PostgresEditionRepository) Create(ctx context.Context, e *domain.Edition) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO editions (id, title, description, publish_date, edition_number, theme, is_published,
			cover_images, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, e.ID, e.Title, e.Description, e.PublishDate, e.EditionNumber, e.Theme, e.IsPublished,
		tagsOrEmpty(e.CoverImages), e.CreatedBy, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert edition: edition number already exists: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert edition: %w", err)
	}
	return nil
}

// GetByID retrieves an edition by ID without its articles.
func (r *PostgresEditionRepository) GetByID(ctx context.Context, id string) (*domain.Edition, error) {
	e, err := scanEdition(r.pool.QueryRow(ctx, `SELECT `+editionColumns+` FROM editions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get edition: %w", err)
	}
	return e, nil
}

// List returns a page of editions, latest publish date first, and the total count.
func (r *PostgresEditionRepository) List(ctx context.Context, filter domain.EditionFilter) ([]domain.Edition, int, error) {
	where := ""
	var args []interface{}
	if filter.Published != nil {
		args = append(args, *filter.Published)
		where = " WHERE is_published = $1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM editions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count editions: %w", err)
	}

	query := `SELECT ` + editionColumns + ` FROM editions` + where + ` ORDER BY publish_date DESC, id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query editions: %w", err)
	}
	defer rows.Close()

	editions := make([]domain.Edition, 0)
	for rows.Next() {
		e, err := scanEdition(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan edition: %w", err)
		}
		editions = append(editions, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate editions: %w", err)
	}
	return editions, total, nil
}

// SetPublished flips the publication flag and returns the updated edition,
// or nil when no edition has that ID.
func (r *PostgresEditionRepository) SetPublished(ctx context.Context, id string, published bool, at time.Time) (*domain.Edition, error) {
	e, err := scanEdition(r.pool.QueryRow(ctx, `
		UPDATE editions SET is_published = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+editionColumns, id, published, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set edition published: %w", err)
	}
	return e, nil
}
