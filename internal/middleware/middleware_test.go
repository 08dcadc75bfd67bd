package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/auth"
)

func TestErrorDetailFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
		field  string
	}{
		{"not found", apperrors.NotFound(apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"dangling reference", apperrors.NotFound(fmt.Errorf("%w: text #5", apperrors.ErrContentObjectNotFound)), http.StatusNotFound, dto.ErrorCodeDanglingReference, ""},
		{"duplicate slug", apperrors.ErrSlugAlreadyExists, http.StatusBadRequest, dto.ErrorCodeSlugTaken, "slug"},
		{"bad kind", apperrors.ErrInvalidContentKind, http.StatusBadRequest, dto.ErrorCodeInvalidKind, "kind"},
		{"missing object", &apperrors.CustomError{Err: apperrors.ErrContentObjectNotFound, Message: "gone"}, http.StatusBadRequest, dto.ErrorCodeObjectMissing, "objectId"},
		{"validation", apperrors.NewValidationError("title", "title is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "title"},
		{"missing parent", apperrors.ErrReferencedRowMissing, http.StatusBadRequest, dto.ErrorCodeParentMissing, ""},
		{"username taken", apperrors.ErrUsernameTaken, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "username"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, ""},
		{"disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled, ""},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := errorDetailFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.Equal(t, tt.field, detail.Field)
		})
	}
}

func TestHandleAPIErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleAPIError(c, apperrors.NotFound(apperrors.ErrSubjectNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "subject not found", resp.Error.Message)
}

type stubLookup struct {
	active bool
}

func (s stubLookup) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	return &models.User{ID: id, IsStaff: true, IsActive: s.active}, nil
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "educa"})
}

func protectedRouter(jwtService *auth.JWTService, users UserLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService, users)

	r := gin.New()
	r.GET("/admin", m.JWTAuth(), m.StaffRequired(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"userId": id}))
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWT()
	r := protectedRouter(jwtService, nil)

	staffToken, _, err := jwtService.GenerateAccessToken(3, "admin", true)
	require.NoError(t, err)
	plainToken, _, err := jwtService.GenerateAccessToken(4, "bob", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		query  string
		status int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", "", http.StatusUnauthorized},
		{"staff", "Bearer " + staffToken, "", http.StatusOK},
		{"raw token", staffToken, "", http.StatusOK},
		{"query token", "", staffToken, http.StatusOK},
		{"not staff", "Bearer " + plainToken, "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/admin"
			if tt.query != "" {
				path += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestStaffRequiredRechecksAccount(t *testing.T) {
	jwtService := newJWT()
	token, _, err := jwtService.GenerateAccessToken(3, "admin", true)
	require.NoError(t, err)

	for _, active := range []bool{true, false} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protectedRouter(jwtService, stubLookup{active: active}).ServeHTTP(w, req)

		if active {
			assert.Equal(t, http.StatusOK, w.Code)
		} else {
			assert.Equal(t, http.StatusForbidden, w.Code)
		}
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
