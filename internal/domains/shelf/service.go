package shelf

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for shelves.
type Service interface {
	ListShelves(ctx context.Context) ([]*Shelf, error)
	GetShelf(ctx context.Context, id uuid.UUID) (*Shelf, error)
	CreateShelf(ctx context.Context, req *CreateRequest) (*Shelf, error)
	UpdateShelf(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Shelf, error)
	DeleteShelf(ctx context.Context, id uuid.UUID) error
	RenameShelf(ctx context.Context, id uuid.UUID, req *RenameRequest) (*Shelf, error)
}
