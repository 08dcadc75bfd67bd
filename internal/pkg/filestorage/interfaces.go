package filestorage

import (
	"io"
	"mime/multipart"
)

// Upload directories for the file-bearing content kinds.
const (
	DirFiles  = "files"
	DirImages = "images"
)

// FileStorage defines the interface for upload storage operations
type FileStorage interface {
	// Save writes r under dir and returns the stored path relative to the storage root
	Save(r io.Reader, filename, dir string) (string, error)

	// SaveUpload saves a multipart upload under dir
	SaveUpload(fileHeader *multipart.FileHeader, dir string) (string, error)

	// Delete removes a stored file; missing files are not an error
	Delete(relPath string) error

	// URL returns the public URL for a stored path
	URL(relPath string) string
}
