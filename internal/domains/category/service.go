package category

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for categories.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	CreateCategory(ctx context.Context, req *CreateRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
