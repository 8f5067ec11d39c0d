package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for categories.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, cat *Category) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, cat *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
