package shelf

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for shelves. Delete and Rename apply
// the in-use guard in the same store call as the mutation, so no book can
// slip in between the check and the write.
type Repository interface {
	List(ctx context.Context) ([]*Shelf, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Shelf, error)
	Create(ctx context.Context, s *Shelf) (*Shelf, error)
	Update(ctx context.Context, id uuid.UUID, s *Shelf) (*Shelf, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Rename(ctx context.Context, id uuid.UUID, newName string) (*Shelf, error)
}
