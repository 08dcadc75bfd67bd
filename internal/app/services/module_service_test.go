package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

func newModuleFixture() (ModuleService, *fakeModules) {
	courses := newFakeCourses()
	courses.rows[1] = &models.Course{ID: 1, Title: "Operating Systems", Slug: "operating-systems"}
	modules := &fakeModules{rows: map[int64]*models.Module{}}
	return NewModuleService(modules, courses), modules
}

func TestCreateModuleTrimsTitle(t *testing.T) {
	svc, modules := newModuleFixture()

	m := &models.Module{CourseID: 1, Title: "  Processes "}
	require.NoError(t, svc.CreateModule(context.Background(), m))
	assert.Equal(t, "Processes", m.Title)
	assert.Contains(t, modules.rows, m.ID)
}

func TestCreateModuleUnknownCourse(t *testing.T) {
	svc, _ := newModuleFixture()

	err := svc.CreateModule(context.Background(), &models.Module{CourseID: 9, Title: "Processes"})

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "courseId", custom.Field)
}

func TestCreateModuleRequiresTitle(t *testing.T) {
	svc, _ := newModuleFixture()

	err := svc.CreateModule(context.Background(), &models.Module{CourseID: 1, Title: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListModulesByCourse(t *testing.T) {
	svc, modules := newModuleFixture()
	ctx := context.Background()
	require.NoError(t, svc.CreateModule(ctx, &models.Module{CourseID: 1, Title: "Processes"}))
	require.NoError(t, svc.CreateModule(ctx, &models.Module{CourseID: 1, Title: "Memory"}))
	modules.rows[99] = &models.Module{ID: 99, CourseID: 2, Title: "Elsewhere"}

	got, err := svc.ListModulesByCourse(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Processes", got[0].Title)
	assert.Equal(t, "Memory", got[1].Title)

	_, err = svc.ListModulesByCourse(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUpdateModuleKeepsCourse(t *testing.T) {
	svc, modules := newModuleFixture()
	ctx := context.Background()
	require.NoError(t, svc.CreateModule(ctx, &models.Module{CourseID: 1, Title: "Processes"}))

	// no course id on update
	m := &models.Module{ID: 1, Title: "Threads"}
	require.NoError(t, svc.UpdateModule(ctx, m))
	assert.Equal(t, int64(1), modules.rows[1].CourseID)
	assert.Equal(t, "Threads", modules.rows[1].Title)

	err := svc.UpdateModule(ctx, &models.Module{ID: 8, Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
}

func TestDeleteModuleMissing(t *testing.T) {
	svc, _ := newModuleFixture()
	assert.ErrorIs(t, svc.DeleteModule(context.Background(), 3), apperrors.ErrResourceNotFound)
}
