package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/amberoven/bakehouse-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CatalogService serves categories and products, with a Redis payload cache
// in front of the public listings.
type CatalogService struct {
	cfg          *config.Config
	categoryRepo *repository.CategoryRepository
	productRepo  *repository.ProductRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	cfg *config.Config,
	categoryRepo *repository.CategoryRepository,
	productRepo *repository.ProductRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		cfg:          cfg,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "catalog_service").Logger(),
	}
}

// ListCategories returns all categories, served from the Redis cache when
// fresh. Cache failures fall back to the database.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	key := config.CacheKey.CategoriesKey()

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var categories []model.Category
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
		// Corrupt payload: drop it and rebuild from the database.
		s.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("op", "category_cache_get").Msg("cache read failed, falling back to database")
	}

	return s.refreshCategoryCache(ctx)
}

// PrewarmCaches loads the category listing into Redis before the server
// accepts traffic.
func (s *CatalogService) PrewarmCaches(ctx context.Context) error {
	if _, err := s.refreshCategoryCache(ctx); err != nil {
		return fmt.Errorf("prewarm categories: %w", err)
	}
	return nil
}

func (s *CatalogService) refreshCategoryCache(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "category_list").Msg("category query failed")
		return nil, fmt.Errorf("list categories: %w", err)
	}

	payload, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	if err := s.rdb.Set(ctx, config.CacheKey.CategoriesKey(), payload, s.cfg.CategoryCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("op", "category_cache_set").Msg("cache write failed")
	}

	return categories, nil
}

// invalidateCategoryCache drops the cached listing after a write.
func (s *CatalogService) invalidateCategoryCache(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.CategoriesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Str("op", "category_cache_del").Msg("cache invalidation failed")
	}
}

// ListProductsByCategory returns the public product listing for a category slug.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, slug string) ([]model.Product, error) {
	products, err := s.productRepo.ListAvailableByCategorySlug(ctx, slug)
	if err != nil {
		s.log.Error().Err(err).Str("op", "product_list_public").Str("category", slug).Msg("product query failed")
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ─── Admin operations ──────────────────────────────────────────────────────

// ListAllProducts returns every product for the dashboard.
func (s *CatalogService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct returns one product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateCategory adds a category and invalidates the listing cache.
func (s *CatalogService) CreateCategory(ctx context.Context, c *model.Category) error {
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Str("op", "category_create").Msg("category insert failed")
		return err
	}
	s.invalidateCategoryCache(ctx)
	return nil
}

// UpdateCategory modifies a category and invalidates the listing cache.
func (s *CatalogService) UpdateCategory(ctx context.Context, c *model.Category) error {
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		s.log.Error().Err(err).Str("op", "category_update").Int("id", c.ID).Msg("category update failed")
		return err
	}
	s.invalidateCategoryCache(ctx)
	return nil
}

// DeleteCategory removes a category and invalidates the listing cache.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("op", "category_delete").Int("id", id).Msg("category delete failed")
		return err
	}
	s.invalidateCategoryCache(ctx)
	return nil
}

// CreateProduct adds a product.
func (s *CatalogService) CreateProduct(ctx context.Context, p *model.Product) error {
	if err := s.productRepo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Str("op", "product_create").Msg("product insert failed")
		return err
	}
	return nil
}

// UpdateProduct modifies a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, p *model.Product) error {
	if err := s.productRepo.Update(ctx, p); err != nil {
		s.log.Error().Err(err).Str("op", "product_update").Int("id", p.ID).Msg("product update failed")
		return err
	}
	return nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("op", "product_delete").Int("id", id).Msg("product delete failed")
		return err
	}
	return nil
}
