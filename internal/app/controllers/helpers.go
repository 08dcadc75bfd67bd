// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/middleware"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithDetails(label + " ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseOptionalID reads an optional positive int64 query parameter
func parseOptionalID(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, name+" must be a positive number").
			WithField(name)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &id, true
}

// parseKindParam reads the :kind path parameter
func parseKindParam(ctx *gin.Context) (models.Kind, bool) {
	kind, err := models.ParseKind(ctx.Param("kind"))
	if err != nil {
		middleware.HandleAPIError(ctx, &apperrors.CustomError{Err: err, Message: err.Error(), Field: "kind"})
		return "", false
	}
	return kind, true
}

// ownerOrCurrentUser returns ownerID, or the authenticated user when it is zero
func ownerOrCurrentUser(ctx *gin.Context, ownerID int64) int64 {
	if ownerID > 0 {
		return ownerID
	}
	if id, ok := middleware.CurrentUserID(ctx); ok {
		return id
	}
	return 0
}
