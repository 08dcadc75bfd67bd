package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/educa/internal/pkg/logger"
)

// ErrInvalidPath is returned for paths that escape the storage root.
var ErrInvalidPath = errors.New("invalid storage path")

// LocalStorage handles saving uploads to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Public URL prefix the root is served under
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance and ensures the
// files/ and images/ directories exist under basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	for _, dir := range []string{basePath, filepath.Join(basePath, DirFiles), filepath.Join(basePath, DirImages)} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create storage directory")
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath returns the storage root on disk
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Save copies r into dir under a generated name that keeps the original extension.
func (ls *LocalStorage) Save(r io.Reader, filename, dir string) (string, error) {
	if dir != DirFiles && dir != DirImages {
		return "", fmt.Errorf("%w: unknown upload directory %q", ErrInvalidPath, dir)
	}

	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	relPath := path.Join(dir, uniqueFilename)
	dstPath := filepath.Join(ls.basePath, dir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", filename).Str("saved_as", relPath).Msg("File saved successfully")
	return relPath, nil
}

// SaveUpload saves a multipart upload under dir
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader, dir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("%w: no file uploaded", ErrInvalidPath)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return ls.Save(file, fileHeader.Filename, dir)
}

// Delete removes a stored file. Deleting a file that is already gone succeeds.
func (ls *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	physicalPath, err := ls.fullPath(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// URL returns the public URL of a stored path
func (ls *LocalStorage) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return ls.baseURL + "/" + strings.TrimLeft(relPath, "/")
}

func (ls *LocalStorage) fullPath(relPath string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(relPath))
	dir := strings.SplitN(strings.TrimPrefix(clean, "/"), "/", 2)[0]
	if dir != DirFiles && dir != DirImages || clean == "/"+dir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relPath)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(clean)), nil
}
