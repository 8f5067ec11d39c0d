package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/pkg/cache"
)

const (
	listCacheKey = "books:list"
	listCacheTTL = 5 * time.Minute
)

const bookColumns = `
    b.id, b.title, b.description, b.published_date, b.type, b.format, b.isbn,
    b.source, b.language, b.relation, b.coverage, b.rights, b.page_count,
    b.quantity, b.condition, b.status, b.author_id, b.category_id,
    b.publisher_id, b.shelf_id, b.cover_url, b.pdf_url, b.audio_url,
    b.created_at, b.updated_at`

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]*book.ListedBook, error) {
	var cached []*book.ListedBook
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
    SELECT` + bookColumns + `,
      COALESCE(a.name, '') AS author_name,
      COALESCE(c.name, '') AS category_name,
      COALESCE(p.name, '') AS publisher_name,
      COALESCE(s.name, '') AS shelf_name
    FROM books b
    LEFT JOIN authors a ON a.id = b.author_id
    LEFT JOIN categories c ON c.id = b.category_id
    LEFT JOIN publishers p ON p.id = b.publisher_id
    LEFT JOIN shelves s ON s.id = b.shelf_id
    ORDER BY b.created_at
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*book.ListedBook
	for rows.Next() {
		var lb book.ListedBook
		if err := scanBook(rows, &lb.Book,
			&lb.AuthorName, &lb.CategoryName, &lb.PublisherName, &lb.ShelfName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, &lb)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	_ = r.cache.Set(ctx, listCacheKey, books, listCacheTTL)

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
    SELECT` + bookColumns + `
    FROM books b
    WHERE b.id = $1
  `
	var b book.Book
	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// Create stores the caller-assigned id; asset objects are keyed by it before
// the row exists.
func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
    INSERT INTO books (
      id, title, description, published_date, type, format, isbn, source,
      language, relation, coverage, rights, page_count, quantity, condition,
      status, author_id, category_id, publisher_id, shelf_id, cover_url,
      pdf_url, audio_url
    )
    VALUES (
      $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
      $17, $18, $19, $20, $21, $22, $23
    )
    RETURNING created_at, updated_at
  `
	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.PublishedDate, b.Type, b.Format,
		b.ISBN, b.Source, b.Language, b.Relation, b.Coverage, b.Rights,
		b.PageCount, b.Quantity, b.Condition, b.Status, b.AuthorID,
		b.CategoryID, b.PublisherID, b.ShelfID, b.CoverURL, b.PDFURL,
		b.AudioURL,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidate(ctx)
	return b, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, b *book.Book) (*book.Book, error) {
	query := `
    UPDATE books
    SET title = $1, description = $2, published_date = $3, type = $4,
      format = $5, isbn = $6, source = $7, language = $8, relation = $9,
      coverage = $10, rights = $11, page_count = $12, quantity = $13,
      condition = $14, status = $15, author_id = $16, category_id = $17,
      publisher_id = $18, shelf_id = $19, cover_url = $20, pdf_url = $21,
      audio_url = $22, updated_at = NOW()
    WHERE id = $23
    RETURNING created_at, updated_at
  `
	err := r.pool.QueryRow(ctx, query,
		b.Title, b.Description, b.PublishedDate, b.Type, b.Format, b.ISBN,
		b.Source, b.Language, b.Relation, b.Coverage, b.Rights, b.PageCount,
		b.Quantity, b.Condition, b.Status, b.AuthorID, b.CategoryID,
		b.PublisherID, b.ShelfID, b.CoverURL, b.PDFURL, b.AudioURL, id,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	b.ID = id
	r.invalidate(ctx)
	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx)
	return nil
}

// UpdateCoverURL is used by the worker after thumbnail generation; it must
// not disturb the rest of the row.
func (r *postgresRepository) UpdateCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE books SET cover_url = $1, updated_at = NOW() WHERE id = $2`,
		coverURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cover url: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx)
	return nil
}

// ResolveNames maps the human-entered reference names of an import row to
// foreign keys. A blank name resolves to nil; an unknown one is an error
// naming the offending reference.
func (r *postgresRepository) ResolveNames(ctx context.Context, names book.ReferenceNames) (book.ReferenceIDs, error) {
	var ids book.ReferenceIDs
	var err error

	if ids.AuthorID, err = r.lookupID(ctx, "authors", "author", names.Author); err != nil {
		return ids, err
	}
	if ids.CategoryID, err = r.lookupID(ctx, "categories", "category", names.Category); err != nil {
		return ids, err
	}
	if ids.PublisherID, err = r.lookupID(ctx, "publishers", "publisher", names.Publisher); err != nil {
		return ids, err
	}
	if ids.ShelfID, err = r.lookupID(ctx, "shelves", "shelf", names.Shelf); err != nil {
		return ids, err
	}

	return ids, nil
}

func (r *postgresRepository) lookupID(ctx context.Context, table, label, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var id uuid.UUID
	query := fmt.Sprintf(`SELECT id FROM %s WHERE name = $1 LIMIT 1`, table)
	err := r.pool.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unknown %s %q", label, name)
		}
		return nil, fmt.Errorf("failed to resolve %s name: %w", label, err)
	}

	return &id, nil
}

func scanBook(row pgx.Row, b *book.Book, extra ...any) error {
	dest := []any{
		&b.ID, &b.Title, &b.Description, &b.PublishedDate, &b.Type, &b.Format,
		&b.ISBN, &b.Source, &b.Language, &b.Relation, &b.Coverage, &b.Rights,
		&b.PageCount, &b.Quantity, &b.Condition, &b.Status, &b.AuthorID,
		&b.CategoryID, &b.PublisherID, &b.ShelfID, &b.CoverURL, &b.PDFURL,
		&b.AudioURL, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, listCacheKey)
}
