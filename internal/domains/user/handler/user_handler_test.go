package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
)

// registerSpy records what the handler actually hands to the service.
type registerSpy struct {
	user.Service
	lastRegister *user.RegisterRequest
}

func (s *registerSpy) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	s.lastRegister = req
	role := req.Role
	if role == "" {
		role = user.RoleStaff
	}
	return &user.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
	}, nil
}

func postJSON(t *testing.T, h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", h)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterIgnoresRequestedRole(t *testing.T) {
	spy := &registerSpy{}
	h := NewUserHandler(spy)

	w := postJSON(t, h.Register, `{
		"full_name": "Sneaky",
		"email": "sneaky@library.vn",
		"password": "supersecret",
		"role": "admin"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, spy.lastRegister)
	assert.Equal(t, user.RoleStaff, spy.lastRegister.Role,
		"public sign-up must not honor a requested role")
}

func TestCreateHonorsRequestedRole(t *testing.T) {
	spy := &registerSpy{}
	h := NewUserHandler(spy)

	w := postJSON(t, h.Create, `{
		"full_name": "Site Admin",
		"email": "admin@library.vn",
		"password": "supersecret",
		"role": "admin"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, spy.lastRegister)
	assert.Equal(t, user.RoleAdmin, spy.lastRegister.Role)
}
