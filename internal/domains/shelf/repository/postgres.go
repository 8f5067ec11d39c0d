package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/shelf"
	"library-backend/pkg/cache"
)

const (
	listCacheKey = "shelves:list"
	listCacheTTL = 5 * time.Minute
)

// postgresRepository implements shelf.Repository. The in-use guard lives in
// the DELETE/UPDATE statements themselves: a book created concurrently cannot
// land between a separate check and the mutation.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) shelf.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]*shelf.Shelf, error) {
	var cached []*shelf.Shelf
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
    SELECT id, name, capacity, created_at, updated_at
    FROM shelves
    ORDER BY created_at
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelves: %w", err)
	}
	defer rows.Close()

	var shelves []*shelf.Shelf
	for rows.Next() {
		var s shelf.Shelf
		if err := rows.Scan(&s.ID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shelf row: %w", err)
		}
		shelves = append(shelves, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shelf rows: %w", err)
	}

	_ = r.cache.Set(ctx, listCacheKey, shelves, listCacheTTL)

	return shelves, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*shelf.Shelf, error) {
	query := `
    SELECT id, name, capacity, created_at, updated_at
    FROM shelves
    WHERE id = $1
  `
	var s shelf.Shelf
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shelf by id: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *shelf.Shelf) (*shelf.Shelf, error) {
	query := `
    INSERT INTO shelves (name, capacity)
    VALUES ($1, $2)
    RETURNING id, name, capacity, created_at, updated_at
  `
	var created shelf.Shelf
	err := r.pool.QueryRow(ctx, query, s.Name, s.Capacity).Scan(
		&created.ID,
		&created.Name,
		&created.Capacity,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shelf: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

// Update changes non-name fields; renames go through Rename so the guard
// applies.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, s *shelf.Shelf) (*shelf.Shelf, error) {
	query := `
    UPDATE shelves
    SET capacity = $1, updated_at = NOW()
    WHERE id = $2
    RETURNING id, name, capacity, created_at, updated_at
  `
	var updated shelf.Shelf
	err := r.pool.QueryRow(ctx, query, s.Capacity, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Capacity,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shelf.ErrShelfNotFound
		}
		return nil, fmt.Errorf("failed to update shelf: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

// Delete refuses while any book references the shelf. The guard and the
// delete are one statement.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
    DELETE FROM shelves
    WHERE id = $1
      AND NOT EXISTS (SELECT 1 FROM books WHERE shelf_id = $1)
  `
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shelf: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.notDeletedReason(ctx, id)
	}

	r.invalidate(ctx)
	return nil
}

// Rename applies the same guard against the shelf's current identity: a
// shelf any book sits on cannot be renamed.
func (r *postgresRepository) Rename(ctx context.Context, id uuid.UUID, newName string) (*shelf.Shelf, error) {
	query := `
    UPDATE shelves
    SET name = $1, updated_at = NOW()
    WHERE id = $2
      AND NOT EXISTS (SELECT 1 FROM books WHERE shelf_id = $2)
    RETURNING id, name, capacity, created_at, updated_at
  `
	var renamed shelf.Shelf
	err := r.pool.QueryRow(ctx, query, newName, id).Scan(
		&renamed.ID,
		&renamed.Name,
		&renamed.Capacity,
		&renamed.CreatedAt,
		&renamed.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notDeletedReason(ctx, id)
		}
		return nil, fmt.Errorf("failed to rename shelf: %w", err)
	}

	r.invalidate(ctx)
	return &renamed, nil
}

// notDeletedReason tells a guarded refusal apart from a missing row.
func (r *postgresRepository) notDeletedReason(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shelves WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check shelf existence: %w", err)
	}

	if exists {
		return shelf.ErrShelfInUse
	}
	return shelf.ErrShelfNotFound
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}
