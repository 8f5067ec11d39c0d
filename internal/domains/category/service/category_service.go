package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/category"
)

// categoryService implements category.Service
type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{
		repo: repo,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*category.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	if id == uuid.Nil {
		return nil, category.ErrInvalidID
	}

	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cat == nil {
		return nil, category.ErrCategoryNotFound
	}

	return cat, nil
}

// CreateCategory validates the request before any store call is made.
func (s *categoryService) CreateCategory(ctx context.Context, req *category.CreateRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cat := &category.Category{
		Name: strings.TrimSpace(req.Name),
	}

	return s.repo.Create(ctx, cat)
}

// UpdateCategory overwrites provided fields; unspecified fields keep their
// prior values.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *category.UpdateRequest) (*category.Category, error) {
	if id == uuid.Nil {
		return nil, category.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, category.ErrCategoryNotFound
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return category.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}
