package publisher

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for publishers.
type Repository interface {
	List(ctx context.Context) ([]*Publisher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)
	Create(ctx context.Context, pub *Publisher) (*Publisher, error)
	Update(ctx context.Context, id uuid.UUID, pub *Publisher) (*Publisher, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
