package repository

import (
	"context"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminUserRepository handles admin credential data access.
type AdminUserRepository struct {
	pool *pgxpool.Pool
}

// NewAdminUserRepository creates a new AdminUserRepository.
func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

// GetByEmail retrieves an admin user by their unique email.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM admin_users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID retrieves an admin user by ID.
func (r *AdminUserRepository) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM admin_users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new admin user.
func (r *AdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admin_users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}
