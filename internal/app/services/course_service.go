package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/slugutil"
	"github.com/yigit/educa/internal/pkg/validation"
)

// CourseService defines the course operations of the admin surface
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo  CourseStore
	subjectRepo SubjectStore
	userRepo    UserStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, subjectRepo SubjectStore, userRepo UserStore) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
	}
}

// prepareCourse normalises and validates a course and its inline rows. Fields
// named in skip are not validated.
func (s *courseServiceImpl) prepareCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline, skip ...string) error {
	if course == nil {
		return apperrors.NewBadRequestError("course is required")
	}

	course.Title = strings.TrimSpace(course.Title)
	course.Overview = strings.TrimSpace(course.Overview)
	course.Slug = slugutil.Resolve(course.Slug, course.Title)
	if course.Title != "" && course.Slug == "" {
		return apperrors.NewValidationError("slug", "slug could not be derived from title")
	}
	if err := validation.StructExcept(course, skip...); err != nil {
		return err
	}

	for i := range inlines {
		in := &inlines[i]
		if in.Delete {
			continue
		}
		in.Title = strings.TrimSpace(in.Title)
		field := fmt.Sprintf("modules[%d].title", i)
		if in.Title == "" {
			return apperrors.NewValidationError(field, "title is required")
		}
		if len(in.Title) > validation.TitleMaxLength {
			return apperrors.NewValidationError(field, fmt.Sprintf("title must be at most %d characters", validation.TitleMaxLength))
		}
	}

	ok, err := s.subjectRepo.SubjectExists(ctx, course.SubjectID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("subjectId", "subject does not exist")
	}
	return nil
}

// CreateCourse stores a new course and its inline modules, deriving the slug
// from the title when none is given.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) (*models.Course, error) {
	if err := s.prepareCourse(ctx, course, inlines); err != nil {
		return nil, err
	}

	ok, err := s.userRepo.UserExists(ctx, course.OwnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewValidationError("ownerId", "owner does not exist")
	}

	if err := s.courseRepo.CreateCourse(ctx, course, inlines); err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, course.ID)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// ListCourses returns courses newest first
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, int64, error) {
	if !filter.Created.Valid() {
		return nil, 0, apperrors.NewValidationError("created", "created must be one of: today past_7_days this_month this_year")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.courseRepo.ListCourses(ctx, filter)
}

// UpdateCourse rewrites the course fields and applies the inline module edits.
// The owner is kept as stored.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) (*models.Course, error) {
	if err := s.prepareCourse(ctx, course, inlines, "OwnerID"); err != nil {
		return nil, err
	}

	if err := s.courseRepo.UpdateCourse(ctx, course, inlines); err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, course.ID)
}

// DeleteCourse removes the course, its modules and their contents
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.DeleteCourse(ctx, id)
}
