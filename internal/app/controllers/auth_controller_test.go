package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/auth"
)

type stubUsers struct {
	user *models.User
}

func (s *stubUsers) CreateUser(context.Context, *models.User) error { return nil }

func (s *stubUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, apperrors.NotFound(apperrors.ErrUserNotFound)
	}
	return s.user, nil
}

func (s *stubUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if s.user == nil || s.user.Username != username {
		return nil, apperrors.NotFound(apperrors.ErrUserNotFound)
	}
	return s.user, nil
}

func (s *stubUsers) UserExists(_ context.Context, id int64) (bool, error) {
	return s.user != nil && s.user.ID == id, nil
}

func (s *stubUsers) UpdatePassword(context.Context, int64, string) error { return nil }

func newAuthRouter(t *testing.T, isStaff bool) http.Handler {
	t.Helper()

	hash, err := auth.HashPassword("change-me-now")
	require.NoError(t, err)
	users := &stubUsers{user: &models.User{ID: testUserID, Username: "admin", Password: hash, IsStaff: isStaff, IsActive: true}}

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "educa"})
	c := NewAuthController(services.NewAuthService(users, jwtService, zerolog.Nop()), zerolog.Nop())

	r := newTestRouter()
	r.POST("/auth/login", c.Login)
	r.GET("/auth/me", c.Me)
	return r
}

func TestLogin(t *testing.T) {
	w, env := doJSON(t, newAuthRouter(t, true), http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "change-me-now"})

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.AuthResponse
	decodeData(t, env, &got)
	assert.NotEmpty(t, got.Token.AccessToken)
	assert.Equal(t, "Bearer", got.Token.TokenType)
	assert.Equal(t, "admin", got.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	w, env := doJSON(t, newAuthRouter(t, true), http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(dto.ErrorCodeInvalidCredentials), env.Error.Code)
}

func TestLoginNonStaffForbidden(t *testing.T) {
	w, _ := doJSON(t, newAuthRouter(t, false), http.MethodPost, "/auth/login", dto.LoginRequest{Username: "admin", Password: "change-me-now"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMe(t *testing.T) {
	w, env := doJSON(t, newAuthRouter(t, true), http.MethodGet, "/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.UserResponse
	decodeData(t, env, &got)
	assert.Equal(t, testUserID, got.ID)
}
