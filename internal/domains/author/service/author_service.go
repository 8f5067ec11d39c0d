package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

// ListAuthors returns authors with publisher names resolved; authors without
// a live publisher reference get the no-publisher placeholder.
func (s *authorService) ListAuthors(ctx context.Context) ([]*author.ListedAuthor, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range authors {
		if a.PublisherName == "" {
			a.PublisherName = author.NoPublisherPlaceholder
		}
	}

	return authors, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrInvalidID
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, author.ErrAuthorNotFound
	}

	return a, nil
}

func (s *authorService) CreateAuthor(ctx context.Context, req *author.CreateRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &author.Author{
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Degree:      strings.TrimSpace(req.Degree),
		Bio:         strings.TrimSpace(req.Bio),
		PublisherID: req.PublisherID,
	}

	return s.repo.Create(ctx, a)
}

// UpdateAuthor overwrites provided fields; unspecified fields keep their
// prior values.
func (s *authorService) UpdateAuthor(ctx context.Context, id uuid.UUID, req *author.UpdateRequest) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, author.ErrAuthorNotFound
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		existing.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		existing.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Degree != nil {
		existing.Degree = strings.TrimSpace(*req.Degree)
	}
	if req.Bio != nil {
		existing.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.ClearPublisher {
		existing.PublisherID = nil
	} else if req.PublisherID != nil {
		existing.PublisherID = req.PublisherID
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *authorService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}
