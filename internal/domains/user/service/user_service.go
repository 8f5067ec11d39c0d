package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// userService implements user.Service.
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = user.RoleStaff
	}

	u := &user.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	return s.repo.Create(ctx, u)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh trades a valid refresh token for a new pair. The user row is read
// again so a deleted account cannot mint new sessions.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrInvalidToken
	}

	return s.issueTokens(u)
}

// ListUsers returns the management listing. Admin accounts are filtered here
// rather than in the query.
func (s *userService) ListUsers(ctx context.Context) ([]*user.User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	listed := make([]*user.User, 0, len(all))
	for _, u := range all {
		if u.Role == user.RoleAdmin {
			continue
		}
		listed = append(listed, u)
	}

	return listed, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if id == uuid.Nil {
		return nil, user.ErrInvalidID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	return u, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateRequest) (*user.User, error) {
	if id == uuid.Nil {
		return nil, user.ErrInvalidID
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, user.ErrUserNotFound
	}

	if req.FullName != nil {
		existing.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		existing.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}
	if req.Role != nil {
		existing.Role = *req.Role
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return user.ErrInvalidID
	}

	return s.repo.Delete(ctx, id)
}

func (s *userService) issueTokens(u *user.User) (*user.TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	}, nil
}
