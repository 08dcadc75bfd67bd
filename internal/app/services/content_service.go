package services

import (
	"context"
	"errors"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

// ContentService manages the placement of items inside modules
type ContentService interface {
	CreateContent(ctx context.Context, moduleID int64, kind string, objectID int64) (*models.Content, error)
	GetContent(ctx context.Context, id int64) (*models.Content, error)
	ResolveContent(ctx context.Context, id int64) (models.Item, error)
	ListContentsByModule(ctx context.Context, moduleID int64) ([]*models.Content, error)
	DeleteContent(ctx context.Context, id int64) error
}

type contentServiceImpl struct {
	contentRepo ContentStore
	moduleRepo  ModuleStore
	registry    *ContentRegistry
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo ContentStore, moduleRepo ModuleStore, registry *ContentRegistry) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
		moduleRepo:  moduleRepo,
		registry:    registry,
	}
}

// CreateContent places (kind, objectID) into a module. Unknown kinds and
// objects that do not exist yet are rejected.
func (s *contentServiceImpl) CreateContent(ctx context.Context, moduleID int64, kind string, objectID int64) (*models.Content, error) {
	k, err := models.ParseKind(kind)
	if err != nil {
		return nil, &apperrors.CustomError{Err: err, Message: err.Error(), Field: "kind"}
	}
	if objectID <= 0 {
		return nil, apperrors.NewValidationError("objectId", "objectId must be greater than 0")
	}

	ok, err := s.moduleRepo.ModuleExists(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewValidationError("moduleId", "module does not exist")
	}

	ok, err = s.registry.ObjectExists(ctx, k, objectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.MissingObject(k.String(), objectID)
	}

	content := &models.Content{ModuleID: moduleID, Kind: k, ObjectID: objectID}
	if err := s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, err
	}
	return s.attach(ctx, content)
}

// GetContent returns the content row with its item attached, or a nil item
// when the reference dangles.
func (s *contentServiceImpl) GetContent(ctx context.Context, id int64) (*models.Content, error) {
	content, err := s.contentRepo.GetContentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.attach(ctx, content)
}

// ResolveContent returns only the referenced item, failing with not-found
// when it no longer exists.
func (s *contentServiceImpl) ResolveContent(ctx context.Context, id int64) (models.Item, error) {
	content, err := s.contentRepo.GetContentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.registry.Resolve(ctx, content)
}

// ListContentsByModule returns a module's contents in order, each resolved
func (s *contentServiceImpl) ListContentsByModule(ctx context.Context, moduleID int64) ([]*models.Content, error) {
	ok, err := s.moduleRepo.ModuleExists(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound(apperrors.ErrModuleNotFound)
	}

	contents, err := s.contentRepo.ListContentsByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	for _, c := range contents {
		if _, err := s.attach(ctx, c); err != nil {
			return nil, err
		}
	}
	return contents, nil
}

// DeleteContent removes the placement only; the item stays
func (s *contentServiceImpl) DeleteContent(ctx context.Context, id int64) error {
	return s.contentRepo.DeleteContent(ctx, id)
}

func (s *contentServiceImpl) attach(ctx context.Context, content *models.Content) (*models.Content, error) {
	item, err := s.registry.Resolve(ctx, content)
	switch {
	case err == nil:
		content.Item = item
	case errors.Is(err, apperrors.ErrContentObjectNotFound):
		content.Item = nil
	default:
		return nil, err
	}
	return content, nil
}
