package repository

import (
	"context"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomepageRepository handles homepage content block access.
type HomepageRepository struct {
	pool *pgxpool.Pool
}

// NewHomepageRepository creates a new HomepageRepository.
func NewHomepageRepository(pool *pgxpool.Pool) *HomepageRepository {
	return &HomepageRepository{pool: pool}
}

// GetAll retrieves every homepage section ordered by key.
func (r *HomepageRepository) GetAll(ctx context.Context) ([]model.HomepageSection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, value, updated_at FROM homepage_sections ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.HomepageSection
	for rows.Next() {
		var s model.HomepageSection
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Upsert inserts or replaces a single section.
func (r *HomepageRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO homepage_sections (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	return err
}
