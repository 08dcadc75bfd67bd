package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/middleware"
)

// ContentController handles the content entries of modules
type ContentController struct {
	contentService services.ContentService
	fileURL        func(string) string
}

// NewContentController creates a new ContentController. fileURL maps stored
// upload paths to public URLs.
func NewContentController(contentService services.ContentService, fileURL func(string) string) *ContentController {
	return &ContentController{
		contentService: contentService,
		fileURL:        fileURL,
	}
}

// CreateContent places an existing item into a module
// @Summary Add content to a module
// @Description Points a module entry at an existing item of the given kind
// @Tags contents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContentRequest true "Content reference"
// @Success 201 {object} dto.APIResponse{data=dto.ContentResponse} "Content created successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown kind, module or object"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/contents [post]
func (c *ContentController) CreateContent(ctx *gin.Context) {
	var req dto.ContentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	content, err := c.contentService.CreateContent(ctx.Request.Context(), req.ModuleID, req.Kind, req.ObjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromContent(content, c.fileURL)))
}

// GetContent retrieves a content entry with its item
// @Summary Get content details
// @Description Returns the entry; item is null when the referenced row is gone
// @Tags contents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ContentResponse} "Content retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Content not found"
// @Router /admin/contents/{id} [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Content")
	if !ok {
		return
	}

	content, err := c.contentService.GetContent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromContent(content, c.fileURL)))
}

// ResolveContent returns the item a content entry points at
// @Summary Resolve content item
// @Tags contents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item resolved successfully"
// @Failure 404 {object} dto.ErrorResponse "Content or referenced item not found"
// @Router /admin/contents/{id}/item [get]
func (c *ContentController) ResolveContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Content")
	if !ok {
		return
	}

	item, err := c.contentService.ResolveContent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromItem(item, c.fileURL)))
}

// ListContentsByModule lists a module's contents in insertion order
// @Summary List module contents
// @Tags contents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ContentResponse} "Contents retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /admin/modules/{id}/contents [get]
func (c *ContentController) ListContentsByModule(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "id", "Module")
	if !ok {
		return
	}

	contents, err := c.contentService.ListContentsByModule(ctx.Request.Context(), moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromContents(contents, c.fileURL)))
}

// DeleteContent removes a content entry. The referenced item is kept.
// @Summary Delete content
// @Tags contents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Content deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Content not found"
// @Router /admin/contents/{id} [delete]
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Content")
	if !ok {
		return
	}

	if err := c.contentService.DeleteContent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Content deleted"}))
}
