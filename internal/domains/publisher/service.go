package publisher

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for publishers.
type Service interface {
	ListPublishers(ctx context.Context) ([]*Publisher, error)
	GetPublisher(ctx context.Context, id uuid.UUID) (*Publisher, error)
	CreatePublisher(ctx context.Context, req *CreateRequest) (*Publisher, error)
	UpdatePublisher(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Publisher, error)
	DeletePublisher(ctx context.Context, id uuid.UUID) error
}
