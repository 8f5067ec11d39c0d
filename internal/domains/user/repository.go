package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract for console accounts. List returns
// every row; the admin exclusion is a service-layer rule.
type Repository interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id uuid.UUID, u *User) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
