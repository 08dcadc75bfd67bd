package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/dberrors"
)

// Unique constraint names from the migrations
const (
	constraintSubjectSlug  = "subjects_slug_key"
	constraintCourseSlug   = "courses_slug_key"
	constraintUsername     = "users_username_key"
	constraintContentKind  = "contents_kind_check"
	constraintContentObjID = "contents_object_id_check"
)

// translateWriteError maps constraint violations onto domain errors.
// It returns nil when err is not a known violation.
func translateWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintSubjectSlug),
		dberrors.IsDuplicateConstraintError(err, constraintCourseSlug):
		return apperrors.ErrSlugAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, constraintUsername):
		return apperrors.ErrUsernameTaken
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrReferencedRowMissing
	case dberrors.IsCheckViolation(err, constraintContentKind):
		return apperrors.ErrInvalidContentKind
	case dberrors.IsCheckViolation(err, constraintContentObjID):
		return apperrors.NewValidationError("objectId", "objectId must be greater than 0")
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
