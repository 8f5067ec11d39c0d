package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/publisher"
)

// publisherService implements publisher.Service
type publisherService struct {
	repo publisher.Repository
}

func NewPublisherService(repo publisher.Repository) publisher.Service {
	return &publisherService{
		repo: repo,
	}
}

func (s *publisherService) ListPublishers(ctx context.Context) ([]*publisher.Publisher, error) {
	return s.repo.List(ctx)
}

func (s *publisherService) GetPublisher(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	if id == uuid.Nil {
		return nil, publisher.ErrInvalidID
	}

	pub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pub == nil {
		return nil, publisher.ErrPublisherNotFound
	}

	return pub, nil
}

func (s *publisherService) CreatePublisher(ctx context.Context, req *publisher.CreateRequest) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pub := &publisher.Publisher{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Address: strings.TrimSpace(req.Address),
		Website: strings.TrimSpace(req.Website),
	}

	return s.repo.Create(ctx, pub)
}

// UpdatePublisher overwrites provided fields; unspecified fields keep their
// prior values.
func (s *publisherService) UpdatePublisher(ctx context.Context, id uuid.UUID, req *publisher.UpdateRequest) (*publisher.Publisher, error) {
	if id == uuid.Nil {
		return nil, publisher.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, publisher.ErrPublisherNotFound
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
	if req.Address != nil {
		existing.Address = strings.TrimSpace(*req.Address)
	}
	if req.Website != nil {
		existing.Website = strings.TrimSpace(*req.Website)
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *publisherService) DeletePublisher(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return publisher.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}
