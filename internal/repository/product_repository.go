package repository

import (
	"context"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository handles product data access.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, category_id, name, slug, description, price_cents, image_url, available, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
		&p.PriceCents, &p.ImageURL, &p.Available, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List retrieves all products, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// ListAvailableByCategorySlug retrieves the public listing for one category.
func (r *ProductRepository) ListAvailableByCategorySlug(ctx context.Context, slug string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.category_id, p.name, p.slug, p.description, p.price_cents,
		        p.image_url, p.available, p.created_at, p.updated_at
		 FROM products p JOIN categories c ON p.category_id = c.id
		 WHERE c.slug = $1 AND p.available
		 ORDER BY p.name`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO products (category_id, name, slug, description, price_cents, image_url, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.CategoryID, p.Name, p.Slug, p.Description, p.PriceCents, p.ImageURL, p.Available,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update modifies an existing product.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE products
		 SET category_id = $1, name = $2, slug = $3, description = $4,
		     price_cents = $5, image_url = $6, available = $7, updated_at = NOW()
		 WHERE id = $8`,
		p.CategoryID, p.Name, p.Slug, p.Description, p.PriceCents, p.ImageURL, p.Available, p.ID)
	return err
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
