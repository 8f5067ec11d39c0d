package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/pkg/cache"
)

const (
	listCacheKey = "authors:list"
	listCacheTTL = 5 * time.Minute
)

// postgresRepository implements author.Repository
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List returns authors in insertion order with the publisher name resolved.
func (r *postgresRepository) List(ctx context.Context) ([]*author.ListedAuthor, error) {
	var cached []*author.ListedAuthor
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
    SELECT a.id, a.name,
      COALESCE(a.phone, '')  AS phone,
      COALESCE(a.email, '')  AS email,
      COALESCE(a.degree, '') AS degree,
      COALESCE(a.bio, '')    AS bio,
      a.publisher_id,
      COALESCE(p.name, '')   AS publisher_name,
      a.created_at, a.updated_at
    FROM authors a
    LEFT JOIN publishers p ON p.id = a.publisher_id
    ORDER BY a.created_at
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []*author.ListedAuthor
	for rows.Next() {
		var a author.ListedAuthor
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Phone,
			&a.Email,
			&a.Degree,
			&a.Bio,
			&a.PublisherID,
			&a.PublisherName,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authors = append(authors, &a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}

	_ = r.cache.Set(ctx, listCacheKey, authors, listCacheTTL)

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
    SELECT id, name,
      COALESCE(phone, '')  AS phone,
      COALESCE(email, '')  AS email,
      COALESCE(degree, '') AS degree,
      COALESCE(bio, '')    AS bio,
      publisher_id,
      created_at, updated_at
    FROM authors
    WHERE id = $1
  `
	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Phone,
		&a.Email,
		&a.Degree,
		&a.Bio,
		&a.PublisherID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
    INSERT INTO authors (name, phone, email, degree, bio, publisher_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, name,
      COALESCE(phone, '')  AS phone,
      COALESCE(email, '')  AS email,
      COALESCE(degree, '') AS degree,
      COALESCE(bio, '')    AS bio,
      publisher_id,
      created_at, updated_at
  `
	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Phone, a.Email, a.Degree, a.Bio, a.PublisherID).Scan(
		&created.ID,
		&created.Name,
		&created.Phone,
		&created.Email,
		&created.Degree,
		&created.Bio,
		&created.PublisherID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, a *author.Author) (*author.Author, error) {
	query := `
    UPDATE authors
    SET name = $1, phone = $2, email = $3, degree = $4, bio = $5, publisher_id = $6, updated_at = NOW()
    WHERE id = $7
    RETURNING id, name,
      COALESCE(phone, '')  AS phone,
      COALESCE(email, '')  AS email,
      COALESCE(degree, '') AS degree,
      COALESCE(bio, '')    AS bio,
      publisher_id,
      created_at, updated_at
  `
	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Phone, a.Email, a.Degree, a.Bio, a.PublisherID, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Phone,
		&updated.Email,
		&updated.Degree,
		&updated.Bio,
		&updated.PublisherID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}
