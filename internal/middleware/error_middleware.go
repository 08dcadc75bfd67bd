package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/filestorage"
	"github.com/yigit/educa/internal/pkg/logger"
)

// firstLine returns the first line of err's message; joined errors put the
// most specific one first.
func firstLine(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}

// errorDetailFor maps err to a status code and response detail
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	withField := func(d *dto.ErrorDetail, field string) *dto.ErrorDetail {
		if hasCustom && custom.Field != "" {
			field = custom.Field
		}
		if field != "" {
			d = d.WithField(field)
		}
		if hasCustom && len(custom.Details) > 0 {
			d = d.WithDetails(custom.Details)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound) && errors.Is(err, apperrors.ErrContentObjectNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeDanglingReference, firstLine(err)).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, firstLine(err))

	case errors.Is(err, apperrors.ErrSlugAlreadyExists):
		return http.StatusBadRequest, withField(dto.NewErrorDetail(dto.ErrorCodeSlugTaken, "slug already exists"), "slug")
	case errors.Is(err, apperrors.ErrInvalidContentKind):
		return http.StatusBadRequest, withField(dto.NewErrorDetail(dto.ErrorCodeInvalidKind, apperrors.ErrInvalidContentKind.Error()), "kind")
	case errors.Is(err, apperrors.ErrContentObjectNotFound):
		return http.StatusBadRequest, withField(dto.NewErrorDetail(dto.ErrorCodeObjectMissing, firstLine(err)), "objectId")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, withField(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, firstLine(err)), "")
	case errors.Is(err, apperrors.ErrReferencedRowMissing):
		return http.StatusBadRequest, withField(dto.NewErrorDetail(dto.ErrorCodeParentMissing, "referenced row does not exist"), "")
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, filestorage.ErrInvalidPath):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, firstLine(err))

	case errors.Is(err, apperrors.ErrUsernameTaken):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "username already exists").WithField("username")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, firstLine(err))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}

// HandleAPIError writes the error response matching err
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		if gin.Mode() != gin.ReleaseMode {
			detail = detail.WithDebugInfo("%v", err)
		}
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// Recovery turns panics into a 500 response and logs them
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	})
}
