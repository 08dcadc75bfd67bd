package dto

import "github.com/yigit/educa/internal/app/models"

// ModuleRequest is the body for creating or updating a standalone module
type ModuleRequest struct {
	CourseID    int64  `json:"courseId" binding:"required,gt=0" example:"1"`
	Title       string `json:"title" binding:"required,max=200" example:"Processes"`
	Description string `json:"description" example:"Scheduling and context switches"`
}

// ModuleInlineRequest is one inline module row sent with a course.
// Rows without an id are created, rows with delete=true are removed.
type ModuleInlineRequest struct {
	ID          int64  `json:"id,omitempty" example:"0"`
	Title       string `json:"title" binding:"max=200" example:"Processes"`
	Description string `json:"description"`
	Delete      bool   `json:"delete,omitempty"`
}

// ModuleResponse represents a module
type ModuleResponse struct {
	ID          int64  `json:"id" example:"1"`
	CourseID    int64  `json:"courseId" example:"1"`
	Title       string `json:"title" example:"Processes"`
	Description string `json:"description"`
}

// ToModel converts the request into a module model
func (r ModuleRequest) ToModel() *models.Module {
	return &models.Module{CourseID: r.CourseID, Title: r.Title, Description: r.Description}
}

// ToInline converts an inline row into the model form
func (r ModuleInlineRequest) ToInline() models.ModuleInline {
	return models.ModuleInline{ID: r.ID, Title: r.Title, Description: r.Description, Delete: r.Delete}
}

// FromModule converts a module model
func FromModule(m *models.Module) ModuleResponse {
	if m == nil {
		return ModuleResponse{}
	}
	return ModuleResponse{ID: m.ID, CourseID: m.CourseID, Title: m.Title, Description: m.Description}
}

// FromModules converts a slice of module models
func FromModules(modules []*models.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, FromModule(m))
	}
	return out
}
