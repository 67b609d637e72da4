package repository

import (
	"context"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository reads the admin allow-list. Lookups hit the unique
// index on email; the serving path never writes here.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository creates a new DirectoryRepository.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// RoleNameByEmail returns the role name for an allow-listed email.
// Returns pgx.ErrNoRows when the email is not on the list.
func (r *DirectoryRepository) RoleNameByEmail(ctx context.Context, email string) (string, error) {
	var roleName string
	err := r.pool.QueryRow(ctx,
		`SELECT role_name FROM allowed_admins WHERE email = $1`, email,
	).Scan(&roleName)
	if err != nil {
		return "", err
	}
	return roleName, nil
}

// List returns all allow-list entries, used by the seed CLI to show the
// current state.
func (r *DirectoryRepository) List(ctx context.Context) ([]model.AllowedAdmin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, role_name, created_at FROM allowed_admins ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AllowedAdmin
	for rows.Next() {
		var e model.AllowedAdmin
		if err := rows.Scan(&e.ID, &e.Email, &e.RoleName, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Upsert inserts or updates an allow-list entry. Only the seed process
// calls this.
func (r *DirectoryRepository) Upsert(ctx context.Context, email, roleName string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO allowed_admins (email, role_name) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET role_name = EXCLUDED.role_name`,
		email, roleName)
	return err
}
