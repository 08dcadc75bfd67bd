package services

import (
	"context"
	"strings"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/validation"
)

// ModuleService defines standalone module operations
type ModuleService interface {
	CreateModule(ctx context.Context, module *models.Module) error
	GetModuleByID(ctx context.Context, id int64) (*models.Module, error)
	ListModulesByCourse(ctx context.Context, courseID int64) ([]*models.Module, error)
	UpdateModule(ctx context.Context, module *models.Module) error
	DeleteModule(ctx context.Context, id int64) error
}

type moduleServiceImpl struct {
	moduleRepo ModuleStore
	courseRepo CourseStore
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleRepo ModuleStore, courseRepo CourseStore) ModuleService {
	return &moduleServiceImpl{moduleRepo: moduleRepo, courseRepo: courseRepo}
}

func (s *moduleServiceImpl) CreateModule(ctx context.Context, module *models.Module) error {
	if module == nil {
		return apperrors.NewBadRequestError("module is required")
	}
	module.Title = strings.TrimSpace(module.Title)
	if err := validation.Struct(module); err != nil {
		return err
	}

	ok, err := s.courseRepo.CourseExists(ctx, module.CourseID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("courseId", "course does not exist")
	}
	return s.moduleRepo.CreateModule(ctx, module)
}

func (s *moduleServiceImpl) GetModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	return s.moduleRepo.GetModuleByID(ctx, id)
}

// ListModulesByCourse returns a course's modules, failing when the course is missing
func (s *moduleServiceImpl) ListModulesByCourse(ctx context.Context, courseID int64) ([]*models.Module, error) {
	ok, err := s.courseRepo.CourseExists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound(apperrors.ErrCourseNotFound)
	}
	return s.moduleRepo.ListModulesByCourse(ctx, courseID)
}

// UpdateModule changes title and description; a module never moves between courses
func (s *moduleServiceImpl) UpdateModule(ctx context.Context, module *models.Module) error {
	if module == nil {
		return apperrors.NewBadRequestError("module is required")
	}
	module.Title = strings.TrimSpace(module.Title)
	if err := validation.StructExcept(module, "CourseID"); err != nil {
		return err
	}
	return s.moduleRepo.UpdateModule(ctx, module)
}

func (s *moduleServiceImpl) DeleteModule(ctx context.Context, id int64) error {
	return s.moduleRepo.DeleteModule(ctx, id)
}
