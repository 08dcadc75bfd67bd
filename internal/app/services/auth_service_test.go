package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "educa.test",
	})
	svc := NewAuthService(newFakeUsers(), jwtService, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), "admin", "admin@example.com", "s3cret-pass", true)
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), "student", "", "s3cret-pass", false)
	require.NoError(t, err)
	return svc
}

func TestLoginIssuesTokenForStaff(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.True(t, resp.User.IsStaff)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "student", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.CreateUser(context.Background(), "someone", "", "short", true)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateUser(context.Background(), "admin", "", "long-enough-pass", true)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}
