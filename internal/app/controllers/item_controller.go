package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/middleware"
	"github.com/yigit/educa/internal/pkg/helpers"
)

// ItemController handles the text, file, image and video items
type ItemController struct {
	itemService services.ItemService
	logger      zerolog.Logger
}

// NewItemController creates a new ItemController
func NewItemController(itemService services.ItemService, logger zerolog.Logger) *ItemController {
	return &ItemController{
		itemService: itemService,
		logger:      logger,
	}
}

func (c *ItemController) respond(ctx *gin.Context, status int, item models.Item) {
	ctx.JSON(status, dto.NewAPIResponse(dto.FromItem(item, c.itemService.FileURL)))
}

// formFile returns the "file" part, or nil when none was sent
func formFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	return fh, err
}

// bindItem decodes the JSON body of a text or video item
func bindItem(ctx *gin.Context, kind models.Kind) (models.Item, bool) {
	switch kind {
	case models.KindText:
		var req dto.TextRequest
		if !middleware.BindJSON(ctx, &req) {
			return nil, false
		}
		item := &models.Text{Content: req.Content}
		item.OwnerID = req.OwnerID
		item.Title = req.Title
		return item, true
	case models.KindVideo:
		var req dto.VideoRequest
		if !middleware.BindJSON(ctx, &req) {
			return nil, false
		}
		item := &models.Video{URL: req.URL}
		item.OwnerID = req.OwnerID
		item.Title = req.Title
		return item, true
	}
	return nil, false
}

// CreateItem creates an item of the given kind
// @Summary Create an item
// @Description Text and video items take a JSON body. File and image items take a multipart form with title, optional ownerId and the file part. ownerId defaults to the caller.
// @Tags items
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(text, file, image, video)
// @Param title formData string false "Title (file and image)"
// @Param ownerId formData int false "Owner (file and image)"
// @Param file formData file false "Upload (file and image)"
// @Success 201 {object} dto.APIResponse{data=dto.ItemResponse} "Item created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/items/{kind} [post]
func (c *ItemController) CreateItem(ctx *gin.Context) {
	kind, ok := parseKindParam(ctx)
	if !ok {
		return
	}

	if kind.HasUpload() {
		var form dto.UploadForm
		if !middleware.BindForm(ctx, &form) {
			return
		}
		upload, err := formFile(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to read uploaded file")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file upload").WithField("file")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		item, err := c.itemService.CreateUpload(ctx.Request.Context(), kind, ownerOrCurrentUser(ctx, form.OwnerID), form.Title, upload)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		c.respond(ctx, http.StatusCreated, item)
		return
	}

	item, ok := bindItem(ctx, kind)
	if !ok {
		return
	}
	item.Base().OwnerID = ownerOrCurrentUser(ctx, item.Base().OwnerID)

	if err := c.itemService.CreateItem(ctx.Request.Context(), item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respond(ctx, http.StatusCreated, item)
}

// GetItem retrieves an item
// @Summary Get item details
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(text, file, image, video)
// @Param id path int true "Item ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /admin/items/{kind}/{id} [get]
func (c *ItemController) GetItem(ctx *gin.Context) {
	kind, ok := parseKindParam(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Item")
	if !ok {
		return
	}

	item, err := c.itemService.GetItem(ctx.Request.Context(), kind, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respond(ctx, http.StatusOK, item)
}

// ListItems lists an owner's items of a kind, most recently updated first
// @Summary List items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(text, file, image, video)
// @Param ownerId query int false "Owner, defaults to the caller"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse} "Items retrieved successfully"
// @Router /admin/items/{kind} [get]
func (c *ItemController) ListItems(ctx *gin.Context) {
	kind, ok := parseKindParam(ctx)
	if !ok {
		return
	}
	ownerID, ok := parseOptionalID(ctx, "ownerId")
	if !ok {
		return
	}
	var owner int64
	if ownerID != nil {
		owner = *ownerID
	}
	owner = ownerOrCurrentUser(ctx, owner)
	page, size := helpers.ParsePaginationParams(ctx)

	items, total, err := c.itemService.ListItems(ctx.Request.Context(), kind, owner, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ItemListResponse{
		Items:      dto.FromItems(items, c.itemService.FileURL),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateItem updates an item. Uploading a new file replaces the stored one.
// @Summary Update an item
// @Tags items
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(text, file, image, video)
// @Param id path int true "Item ID" Format(int64) minimum(1)
// @Param title formData string false "Title (file and image)"
// @Param file formData file false "Replacement upload (file and image)"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /admin/items/{kind}/{id} [put]
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	kind, ok := parseKindParam(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Item")
	if !ok {
		return
	}

	if kind.HasUpload() {
		var form dto.UploadForm
		if !middleware.BindForm(ctx, &form) {
			return
		}
		upload, err := formFile(ctx)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file upload").WithField("file")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		item, err := c.itemService.UpdateUpload(ctx.Request.Context(), kind, id, form.Title, upload)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		c.respond(ctx, http.StatusOK, item)
		return
	}

	item, ok := bindItem(ctx, kind)
	if !ok {
		return
	}
	item.Base().ID = id

	if err := c.itemService.UpdateItem(ctx.Request.Context(), item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respond(ctx, http.StatusOK, item)
}

// DeleteItem deletes an item; contents that point at it are left in place
// @Summary Delete an item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Item kind" Enums(text, file, image, video)
// @Param id path int true "Item ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Item deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /admin/items/{kind}/{id} [delete]
func (c *ItemController) DeleteItem(ctx *gin.Context) {
	kind, ok := parseKindParam(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Item")
	if !ok {
		return
	}

	if err := c.itemService.DeleteItem(ctx.Request.Context(), kind, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Item deleted"}))
}
