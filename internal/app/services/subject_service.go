package services

import (
	"context"
	"strings"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/slugutil"
	"github.com/yigit/educa/internal/pkg/validation"
)

// SubjectService defines the subject operations of the admin surface
type SubjectService interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	ListSubjects(ctx context.Context, search string, page, size int) ([]*models.Subject, int64, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjectRepo SubjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectStore) SubjectService {
	return &subjectServiceImpl{subjectRepo: subjectRepo}
}

// prepareSubject trims input, fills an empty slug from the title and validates.
func prepareSubject(subject *models.Subject) error {
	if subject == nil {
		return apperrors.NewBadRequestError("subject is required")
	}
	subject.Title = strings.TrimSpace(subject.Title)
	subject.Slug = slugutil.Resolve(subject.Slug, subject.Title)
	if subject.Title != "" && subject.Slug == "" {
		return apperrors.NewValidationError("slug", "slug could not be derived from title")
	}
	return validation.Struct(subject)
}

func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if err := prepareSubject(subject); err != nil {
		return err
	}
	return s.subjectRepo.CreateSubject(ctx, subject)
}

func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

func (s *subjectServiceImpl) ListSubjects(ctx context.Context, search string, page, size int) ([]*models.Subject, int64, error) {
	return s.subjectRepo.ListSubjects(ctx, strings.TrimSpace(search), page, size)
}

func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	if err := prepareSubject(subject); err != nil {
		return err
	}
	return s.subjectRepo.UpdateSubject(ctx, subject)
}

// DeleteSubject removes the subject along with every course under it
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.DeleteSubject(ctx, id)
}
