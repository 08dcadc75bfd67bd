package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

type fakeModuleService struct {
	modules []*models.Module
	updated *models.Module
	err     error
}

func (f *fakeModuleService) CreateModule(_ context.Context, m *models.Module) error {
	if f.err != nil {
		return f.err
	}
	m.ID = 11
	return nil
}

func (f *fakeModuleService) GetModuleByID(_ context.Context, id int64) (*models.Module, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Module{ID: id, CourseID: 1, Title: "Processes"}, nil
}

func (f *fakeModuleService) ListModulesByCourse(_ context.Context, courseID int64) ([]*models.Module, error) {
	return f.modules, f.err
}

func (f *fakeModuleService) UpdateModule(_ context.Context, m *models.Module) error {
	f.updated = m
	return f.err
}

func (f *fakeModuleService) DeleteModule(_ context.Context, id int64) error {
	return f.err
}

func newModuleRouter(svc *fakeModuleService) http.Handler {
	r := newTestRouter()
	c := NewModuleController(svc)
	r.POST("/modules", c.CreateModule)
	r.GET("/modules/:id", c.GetModuleByID)
	r.PUT("/modules/:id", c.UpdateModule)
	r.DELETE("/modules/:id", c.DeleteModule)
	r.GET("/courses/:id/modules", c.ListModulesByCourse)
	return r
}

func TestCreateModule(t *testing.T) {
	w, env := doJSON(t, newModuleRouter(&fakeModuleService{}), http.MethodPost, "/modules",
		dto.ModuleRequest{CourseID: 1, Title: "Processes"})

	require.Equal(t, http.StatusCreated, w.Code)
	var got dto.ModuleResponse
	decodeData(t, env, &got)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, int64(1), got.CourseID)
}

func TestCreateModuleRequiresCourse(t *testing.T) {
	w, env := doJSON(t, newModuleRouter(&fakeModuleService{}), http.MethodPost, "/modules", `{"title":"Processes"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "courseId", env.Error.Field)
}

func TestListModulesByCourse(t *testing.T) {
	svc := &fakeModuleService{modules: []*models.Module{
		{ID: 1, CourseID: 3, Title: "Processes"},
		{ID: 2, CourseID: 3, Title: "Memory"},
	}}
	w, env := doJSON(t, newModuleRouter(svc), http.MethodGet, "/courses/3/modules", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.ModuleResponse
	decodeData(t, env, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Memory", got[1].Title)
}

func TestListModulesUnknownCourse(t *testing.T) {
	svc := &fakeModuleService{err: apperrors.NotFound(apperrors.ErrCourseNotFound)}
	w, env := doJSON(t, newModuleRouter(svc), http.MethodGet, "/courses/3/modules", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), env.Error.Code)
}

func TestUpdateModuleUsesPathID(t *testing.T) {
	svc := &fakeModuleService{}
	w, _ := doJSON(t, newModuleRouter(svc), http.MethodPut, "/modules/5",
		dto.ModuleRequest{CourseID: 1, Title: "Threads"})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, int64(5), svc.updated.ID)
	assert.Equal(t, "Threads", svc.updated.Title)
}

func TestDeleteModuleNotFound(t *testing.T) {
	svc := &fakeModuleService{err: apperrors.NotFound(apperrors.ErrModuleNotFound)}
	w, _ := doJSON(t, newModuleRouter(svc), http.MethodDelete, "/modules/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
