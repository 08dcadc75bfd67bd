package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Catalog rows. Lookups wrap these with NotFound.
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrModuleNotFound       = errors.New("module not found")
	ErrContentNotFound      = errors.New("content not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrSlugAlreadyExists    = errors.New("slug already exists")
	ErrReferencedRowMissing = errors.New("referenced row does not exist")
)

// Polymorphic content references
var (
	ErrInvalidContentKind    = errors.New("content kind must be one of text, file, image, video")
	ErrContentObjectNotFound = errors.New("content object not found")
	ErrItemNotFound          = errors.New("content item not found")
)

// NotFound joins a domain sentinel with ErrResourceNotFound so both match errors.Is.
func NotFound(domainErr error) error {
	return errors.Join(domainErr, ErrResourceNotFound)
}

// MissingObject rejects a new content row whose (kind, id) names no item.
func MissingObject(kind string, id int64) error {
	return &CustomError{
		Err:     ErrContentObjectNotFound,
		Message: fmt.Sprintf("no %s with id %d", kind, id),
		Field:   "objectId",
		Details: map[string]interface{}{"kind": kind, "objectId": id},
	}
}

// DanglingReference reports an existing content row whose item is gone.
// It matches ErrContentObjectNotFound and ErrResourceNotFound.
func DanglingReference(kind string, id int64) error {
	return NotFound(fmt.Errorf("%w: %s #%d", ErrContentObjectNotFound, kind, id))
}

// NewValidationError creates a validation error bound to a single field
func NewValidationError(field, message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message, Field: field}
}

func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// CustomError carries a sentinel plus the message, field and details shown to clients
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

func (e *CustomError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}
