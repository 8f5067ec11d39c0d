package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users []*user.User
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, u *user.User) (*user.User, error) {
	for i, existing := range f.users {
		if existing.ID == id {
			u.ID = id
			f.users[i] = u
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.users {
		if existing.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

func newTestService(repo *fakeUserRepo) user.Service {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	return NewUserService(repo, manager)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Site Admin",
		Email:    "admin@library.vn",
		Password: "supersecret",
		Role:     user.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Front Desk",
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	listed, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "staff@library.vn", listed[0].Email)
	assert.Equal(t, user.RoleStaff, listed[0].Role)

	// the admin row still exists, it is only hidden from the listing
	assert.Len(t, repo.users, 2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	req := &user.RegisterRequest{
		FullName: "First",
		Email:    "dup@library.vn",
		Password: "supersecret",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.FullName = "Second"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Front Desk",
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	require.NotNil(t, tokens.User)
	assert.Equal(t, "staff@library.vn", tokens.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Front Desk",
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &user.LoginRequest{
		Email:    "staff@library.vn",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "ghost@library.vn",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Front Desk",
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		FullName: "Front Desk",
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "staff@library.vn",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
