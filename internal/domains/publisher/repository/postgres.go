package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/publisher"
	"library-backend/pkg/cache"
)

const (
	listCacheKey = "publishers:list"
	listCacheTTL = 5 * time.Minute
)

// postgresRepository implements publisher.Repository
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) publisher.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]*publisher.Publisher, error) {
	var cached []*publisher.Publisher
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
    SELECT id, name,
      COALESCE(phone, '')   AS phone,
      COALESCE(email, '')   AS email,
      COALESCE(address, '') AS address,
      COALESCE(website, '') AS website,
      created_at, updated_at
    FROM publishers
    ORDER BY created_at
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	defer rows.Close()

	var pubs []*publisher.Publisher
	for rows.Next() {
		var pub publisher.Publisher
		err := rows.Scan(
			&pub.ID,
			&pub.Name,
			&pub.Phone,
			&pub.Email,
			&pub.Address,
			&pub.Website,
			&pub.CreatedAt,
			&pub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publisher row: %w", err)
		}
		pubs = append(pubs, &pub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publisher rows: %w", err)
	}

	_ = r.cache.Set(ctx, listCacheKey, pubs, listCacheTTL)

	return pubs, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	query := `
    SELECT id, name,
      COALESCE(phone, '')   AS phone,
      COALESCE(email, '')   AS email,
      COALESCE(address, '') AS address,
      COALESCE(website, '') AS website,
      created_at, updated_at
    FROM publishers
    WHERE id = $1
  `
	var pub publisher.Publisher
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pub.ID,
		&pub.Name,
		&pub.Phone,
		&pub.Email,
		&pub.Address,
		&pub.Website,
		&pub.CreatedAt,
		&pub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get publisher by id: %w", err)
	}

	return &pub, nil
}

func (r *postgresRepository) Create(ctx context.Context, pub *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
    INSERT INTO publishers (name, phone, email, address, website)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name,
      COALESCE(phone, '')   AS phone,
      COALESCE(email, '')   AS email,
      COALESCE(address, '') AS address,
      COALESCE(website, '') AS website,
      created_at, updated_at
  `
	var created publisher.Publisher
	err := r.pool.QueryRow(ctx, query, pub.Name, pub.Phone, pub.Email, pub.Address, pub.Website).Scan(
		&created.ID,
		&created.Name,
		&created.Phone,
		&created.Email,
		&created.Address,
		&created.Website,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, pub *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
    UPDATE publishers
    SET name = $1, phone = $2, email = $3, address = $4, website = $5, updated_at = NOW()
    WHERE id = $6
    RETURNING id, name,
      COALESCE(phone, '')   AS phone,
      COALESCE(email, '')   AS email,
      COALESCE(address, '') AS address,
      COALESCE(website, '') AS website,
      created_at, updated_at
  `
	var updated publisher.Publisher
	err := r.pool.QueryRow(ctx, query, pub.Name, pub.Phone, pub.Email, pub.Address, pub.Website, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Phone,
		&updated.Email,
		&updated.Address,
		&updated.Website,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}

	if result.RowsAffected() == 0 {
		return publisher.ErrPublisherNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}
