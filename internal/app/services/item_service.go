package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/filestorage"
	"github.com/yigit/educa/internal/pkg/logger"
	"github.com/yigit/educa/internal/pkg/validation"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

// ItemService manages the kind items that contents point at
type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) error
	CreateUpload(ctx context.Context, kind models.Kind, ownerID int64, title string, upload *multipart.FileHeader) (models.Item, error)
	GetItem(ctx context.Context, kind models.Kind, id int64) (models.Item, error)
	ListItems(ctx context.Context, kind models.Kind, ownerID int64, page, size int) ([]models.Item, int64, error)
	UpdateItem(ctx context.Context, item models.Item) error
	UpdateUpload(ctx context.Context, kind models.Kind, id int64, title string, upload *multipart.FileHeader) (models.Item, error)
	DeleteItem(ctx context.Context, kind models.Kind, id int64) error
	FileURL(path string) string
}

type itemServiceImpl struct {
	registry *ContentRegistry
	userRepo UserStore
	storage  filestorage.FileStorage
}

// NewItemService creates a new item service instance
func NewItemService(registry *ContentRegistry, userRepo UserStore, storage filestorage.FileStorage) ItemService {
	return &itemServiceImpl{
		registry: registry,
		userRepo: userRepo,
		storage:  storage,
	}
}

// uploadDir returns where binaries of kind are stored
func uploadDir(kind models.Kind) (string, error) {
	switch kind {
	case models.KindFile:
		return filestorage.DirFiles, nil
	case models.KindImage:
		return filestorage.DirImages, nil
	}
	return "", apperrors.NewBadRequestError(kind.String() + " items do not take uploads")
}

func checkUpload(kind models.Kind, upload *multipart.FileHeader) error {
	if upload == nil {
		return apperrors.NewValidationError("file", "file is required")
	}
	if kind == models.KindImage && !imageExtensions[strings.ToLower(filepath.Ext(upload.Filename))] {
		return apperrors.NewValidationError("file", "file must be an image")
	}
	return nil
}

func (s *itemServiceImpl) checkOwner(ctx context.Context, ownerID int64) error {
	ok, err := s.userRepo.UserExists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("ownerId", "owner does not exist")
	}
	return nil
}

func trimTitle(item models.Item) {
	b := item.Base()
	b.Title = strings.TrimSpace(b.Title)
}

// CreateItem stores a text or video item
func (s *itemServiceImpl) CreateItem(ctx context.Context, item models.Item) error {
	if item == nil {
		return apperrors.NewBadRequestError("item is required")
	}
	if item.Kind().HasUpload() {
		return apperrors.NewBadRequestError(item.Kind().String() + " items must be uploaded")
	}

	store, err := s.registry.Store(item.Kind())
	if err != nil {
		return err
	}

	trimTitle(item)
	if err := validation.Struct(item); err != nil {
		return err
	}
	if err := s.checkOwner(ctx, item.Base().OwnerID); err != nil {
		return err
	}
	return store.Create(ctx, item)
}

// CreateUpload saves the binary under the kind's directory and stores the item.
// The saved binary is removed again if the row cannot be written.
func (s *itemServiceImpl) CreateUpload(ctx context.Context, kind models.Kind, ownerID int64, title string, upload *multipart.FileHeader) (models.Item, error) {
	dir, err := uploadDir(kind)
	if err != nil {
		return nil, err
	}
	store, err := s.registry.Store(kind)
	if err != nil {
		return nil, err
	}

	item := models.NewItem(kind)
	b := item.Base()
	b.OwnerID = ownerID
	b.Title = strings.TrimSpace(title)
	if err := validation.StructExcept(item, "File"); err != nil {
		return nil, err
	}
	if err := checkUpload(kind, upload); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	path, err := s.storage.SaveUpload(upload, dir)
	if err != nil {
		return nil, err
	}
	setUploadPath(item, path)

	if err := store.Create(ctx, item); err != nil {
		s.removeFile(path)
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) GetItem(ctx context.Context, kind models.Kind, id int64) (models.Item, error) {
	store, err := s.registry.Store(kind)
	if err != nil {
		return nil, err
	}
	return store.GetByID(ctx, id)
}

// ListItems returns one page of an owner's items of kind
func (s *itemServiceImpl) ListItems(ctx context.Context, kind models.Kind, ownerID int64, page, size int) ([]models.Item, int64, error) {
	store, err := s.registry.Store(kind)
	if err != nil {
		return nil, 0, err
	}
	return store.ListByOwner(ctx, ownerID, page, size)
}

// UpdateItem rewrites a text or video item; updated_at is refreshed
func (s *itemServiceImpl) UpdateItem(ctx context.Context, item models.Item) error {
	if item == nil {
		return apperrors.NewBadRequestError("item is required")
	}
	if item.Kind().HasUpload() {
		return apperrors.NewBadRequestError(item.Kind().String() + " items must be uploaded")
	}

	store, err := s.registry.Store(item.Kind())
	if err != nil {
		return err
	}

	trimTitle(item)
	if err := validation.StructExcept(item, "ItemBase.OwnerID"); err != nil {
		return err
	}
	return store.Update(ctx, item)
}

// UpdateUpload changes the title and, when a new binary is given, replaces the
// stored file. The old binary is removed once the row points at the new one.
func (s *itemServiceImpl) UpdateUpload(ctx context.Context, kind models.Kind, id int64, title string, upload *multipart.FileHeader) (models.Item, error) {
	dir, err := uploadDir(kind)
	if err != nil {
		return nil, err
	}
	store, err := s.registry.Store(kind)
	if err != nil {
		return nil, err
	}

	item, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPath, _ := models.UploadPath(item)

	item.Base().Title = strings.TrimSpace(title)
	if err := validation.StructExcept(item, "ItemBase.OwnerID", "File"); err != nil {
		return nil, err
	}

	newPath := ""
	if upload != nil {
		if err := checkUpload(kind, upload); err != nil {
			return nil, err
		}
		if newPath, err = s.storage.SaveUpload(upload, dir); err != nil {
			return nil, err
		}
		setUploadPath(item, newPath)
	}

	if err := store.Update(ctx, item); err != nil {
		if newPath != "" {
			s.removeFile(newPath)
		}
		return nil, err
	}
	if newPath != "" && oldPath != "" {
		s.removeFile(oldPath)
	}
	return item, nil
}

// DeleteItem deletes the row and, for file and image items, the stored binary.
// Content rows pointing at the item are not touched.
func (s *itemServiceImpl) DeleteItem(ctx context.Context, kind models.Kind, id int64) error {
	store, err := s.registry.Store(kind)
	if err != nil {
		return err
	}

	var path string
	if kind.HasUpload() {
		item, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		path, _ = models.UploadPath(item)
	}

	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	if path != "" {
		s.removeFile(path)
	}
	return nil
}

// FileURL maps a stored path to its public URL
func (s *itemServiceImpl) FileURL(path string) string {
	return s.storage.URL(path)
}

func (s *itemServiceImpl) removeFile(path string) {
	if err := s.storage.Delete(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to remove stored upload")
	}
}

func setUploadPath(item models.Item, path string) {
	switch it := item.(type) {
	case *models.File:
		it.File = path
	case *models.Image:
		it.File = path
	}
}
