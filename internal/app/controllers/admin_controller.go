package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/admin"
	"github.com/yigit/educa/internal/app/models/dto"
)

// AdminController exposes the model registrations
type AdminController struct {
	site *admin.Site
}

// NewAdminController creates a new AdminController
func NewAdminController(site *admin.Site) *AdminController {
	return &AdminController{site: site}
}

// ListModels returns how each model is presented by the admin
// @Summary List admin models
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ModelAdminResponse} "Registered models"
// @Router /admin/models [get]
func (c *AdminController) ListModels(ctx *gin.Context) {
	registered := c.site.Models()
	out := make([]dto.ModelAdminResponse, 0, len(registered))
	for _, m := range registered {
		out = append(out, dto.ModelAdminResponse{
			Name:               m.Name,
			Path:               m.Path,
			ListDisplay:        m.ListDisplay,
			ListFilter:         m.ListFilter,
			SearchFields:       m.SearchFields,
			PrepopulatedFields: m.PrepopulatedFields,
			Inlines:            m.Inlines,
			Ordering:           m.Ordering,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(out))
}
