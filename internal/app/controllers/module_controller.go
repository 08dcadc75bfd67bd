package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/middleware"
)

// ModuleController handles module-related operations
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{moduleService: moduleService}
}

// CreateModule creates a module under a course
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ModuleRequest true "Module information"
// @Success 201 {object} dto.APIResponse{data=dto.ModuleResponse} "Module created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.ModuleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	module := req.ToModel()
	if err := c.moduleService.CreateModule(ctx.Request.Context(), module); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromModule(module)))
}

// GetModuleByID retrieves a module
// @Summary Get module details
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ModuleResponse} "Module retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /admin/modules/{id} [get]
func (c *ModuleController) GetModuleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Module")
	if !ok {
		return
	}

	module, err := c.moduleService.GetModuleByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromModule(module)))
}

// ListModulesByCourse lists the modules of a course
// @Summary List course modules
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ModuleResponse} "Modules retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id}/modules [get]
func (c *ModuleController) ListModulesByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	modules, err := c.moduleService.ListModulesByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromModules(modules)))
}

// UpdateModule updates a module's title and description
// @Summary Update a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Param request body dto.ModuleRequest true "Updated module information"
// @Success 200 {object} dto.APIResponse{data=dto.ModuleResponse} "Module updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /admin/modules/{id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Module")
	if !ok {
		return
	}

	var req dto.ModuleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	module := req.ToModel()
	module.ID = id
	if err := c.moduleService.UpdateModule(ctx.Request.Context(), module); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromModule(module)))
}

// DeleteModule deletes a module and its contents
// @Summary Delete a module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Module deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /admin/modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Module")
	if !ok {
		return
	}

	if err := c.moduleService.DeleteModule(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Module deleted"}))
}
