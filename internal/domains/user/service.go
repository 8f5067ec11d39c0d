package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for accounts and sessions.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
