package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/category"
	"library-backend/pkg/cache"
)

const (
	listCacheKey = "categories:list"
	listCacheTTL = 5 * time.Minute
)

// postgresRepository implements category.Repository with a read-through list
// cache invalidated by every mutation.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List returns categories in insertion order.
func (r *postgresRepository) List(ctx context.Context) ([]*category.Category, error) {
	var cached []*category.Category
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
    SELECT id, name, created_at, updated_at
    FROM categories
    ORDER BY created_at
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		cats = append(cats, &cat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	// Cache failures are not fatal.
	_ = r.cache.Set(ctx, listCacheKey, cats, listCacheTTL)

	return cats, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `
    SELECT id, name, created_at, updated_at
    FROM categories
    WHERE id = $1
  `
	var cat category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return &cat, nil
}

func (r *postgresRepository) Create(ctx context.Context, cat *category.Category) (*category.Category, error) {
	query := `
    INSERT INTO categories (name)
    VALUES ($1)
    RETURNING id, name, created_at, updated_at
  `
	var created category.Category
	err := r.pool.QueryRow(ctx, query, cat.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, cat *category.Category) (*category.Category, error) {
	query := `
    UPDATE categories
    SET name = $1, updated_at = NOW()
    WHERE id = $2
    RETURNING id, name, created_at, updated_at
  `
	var updated category.Category
	err := r.pool.QueryRow(ctx, query, cat.Name, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}
