package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

func newSubjectRouter(svc *fakeSubjectService) http.Handler {
	r := newTestRouter()
	c := NewSubjectController(svc)
	r.POST("/subjects", c.CreateSubject)
	r.GET("/subjects", c.ListSubjects)
	r.GET("/subjects/:id", c.GetSubjectByID)
	r.PUT("/subjects/:id", c.UpdateSubject)
	r.DELETE("/subjects/:id", c.DeleteSubject)
	return r
}

func TestCreateSubject(t *testing.T) {
	svc := &fakeSubjectService{}
	w, env := doJSON(t, newSubjectRouter(svc), http.MethodPost, "/subjects", dto.SubjectRequest{Title: "Mathematics"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var got dto.SubjectResponse
	decodeData(t, env, &got)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "derived", got.Slug)
}

func TestCreateSubjectRequiresTitle(t *testing.T) {
	w, env := doJSON(t, newSubjectRouter(&fakeSubjectService{}), http.MethodPost, "/subjects", `{"slug":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), env.Error.Code)
	assert.Equal(t, "title", env.Error.Field)
}

func TestCreateSubjectDuplicateSlug(t *testing.T) {
	svc := &fakeSubjectService{err: apperrors.ErrSlugAlreadyExists}
	w, env := doJSON(t, newSubjectRouter(svc), http.MethodPost, "/subjects", dto.SubjectRequest{Title: "Math", Slug: "math"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "slug", env.Error.Field)
}

func TestGetSubjectNotFound(t *testing.T) {
	svc := &fakeSubjectService{err: apperrors.NotFound(apperrors.ErrSubjectNotFound)}
	w, env := doJSON(t, newSubjectRouter(svc), http.MethodGet, "/subjects/4", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), env.Error.Code)
	assert.Equal(t, "subject not found", env.Error.Message)
}

func TestGetSubjectRejectsBadID(t *testing.T) {
	w, _ := doJSON(t, newSubjectRouter(&fakeSubjectService{}), http.MethodGet, "/subjects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSubjects(t *testing.T) {
	svc := &fakeSubjectService{subjects: map[int64]*models.Subject{1: {ID: 1, Title: "Art", Slug: "art"}}}
	w, env := doJSON(t, newSubjectRouter(svc), http.MethodGet, "/subjects?q=%20ar%20&page=1&size=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ar", svc.search)

	var got dto.SubjectListResponse
	decodeData(t, env, &got)
	require.Len(t, got.Subjects, 1)
	assert.Equal(t, int64(1), got.Pagination.TotalItems)
	assert.Equal(t, 10, got.Pagination.PageSize)
}

func TestDeleteSubject(t *testing.T) {
	w, env := doJSON(t, newSubjectRouter(&fakeSubjectService{}), http.MethodDelete, "/subjects/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}
