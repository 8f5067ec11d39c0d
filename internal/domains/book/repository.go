package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for books. List resolves reference
// display names with joins; Create stores the caller-assigned id so asset
// keys can be derived before the row exists.
type Repository interface {
	List(ctx context.Context) ([]*ListedBook, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	Create(ctx context.Context, b *Book) (*Book, error)
	Update(ctx context.Context, id uuid.UUID, b *Book) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error
	ResolveNames(ctx context.Context, names ReferenceNames) (ReferenceIDs, error)
}

// ReferenceNames are the human-entered reference columns of one import row.
type ReferenceNames struct {
	Author    string
	Category  string
	Publisher string
	Shelf     string
}

// ReferenceIDs are the resolved foreign keys; nil where the name was blank.
type ReferenceIDs struct {
	AuthorID    *uuid.UUID
	CategoryID  *uuid.UUID
	PublisherID *uuid.UUID
	ShelfID     *uuid.UUID
}
