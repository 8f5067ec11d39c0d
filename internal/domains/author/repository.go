package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for authors. List resolves the
// publisher display name with a join; an unset or unmatched publisher comes
// back as an empty name.
type Repository interface {
	List(ctx context.Context) ([]*ListedAuthor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	Create(ctx context.Context, a *Author) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, a *Author) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
