package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for authors.
type Service interface {
	ListAuthors(ctx context.Context) ([]*ListedAuthor, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*Author, error)
	CreateAuthor(ctx context.Context, req *CreateRequest) (*Author, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}
