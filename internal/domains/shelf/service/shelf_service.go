package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/shelf"
)

// shelfService implements shelf.Service
type shelfService struct {
	repo shelf.Repository
}

func NewShelfService(repo shelf.Repository) shelf.Service {
	return &shelfService{
		repo: repo,
	}
}

func (s *shelfService) ListShelves(ctx context.Context) ([]*shelf.Shelf, error) {
	return s.repo.List(ctx)
}

func (s *shelfService) GetShelf(ctx context.Context, id uuid.UUID) (*shelf.Shelf, error) {
	if id == uuid.Nil {
		return nil, shelf.ErrInvalidID
	}

	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sh == nil {
		return nil, shelf.ErrShelfNotFound
	}

	return sh, nil
}

func (s *shelfService) CreateShelf(ctx context.Context, req *shelf.CreateRequest) (*shelf.Shelf, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sh := &shelf.Shelf{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
	}

	return s.repo.Create(ctx, sh)
}

func (s *shelfService) UpdateShelf(ctx context.Context, id uuid.UUID, req *shelf.UpdateRequest) (*shelf.Shelf, error) {
	if id == uuid.Nil {
		return nil, shelf.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shelf.ErrShelfNotFound
	}

	if req.Capacity != nil {
		existing.Capacity = *req.Capacity
	}

	return s.repo.Update(ctx, id, existing)
}

// DeleteShelf refuses with ErrShelfInUse while any book references the shelf.
func (s *shelfService) DeleteShelf(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return shelf.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}

// RenameShelf applies the in-use guard against the shelf's current identity
// before changing its display name.
func (s *shelfService) RenameShelf(ctx context.Context, id uuid.UUID, req *shelf.RenameRequest) (*shelf.Shelf, error) {
	if id == uuid.Nil {
		return nil, shelf.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Rename(ctx, id, strings.TrimSpace(req.Name))
}
