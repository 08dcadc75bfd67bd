package dto

import (
	"time"

	"github.com/yigit/educa/internal/app/models"
)

// CourseRequest is the body for creating or updating a course together with
// its inline modules. OwnerID defaults to the authenticated user.
type CourseRequest struct {
	SubjectID int64                 `json:"subjectId" binding:"required,gt=0" example:"1"`
	OwnerID   int64                 `json:"ownerId,omitempty" example:"1"`
	Title     string                `json:"title" binding:"required,max=200" example:"Intro to Systems"`
	Slug      string                `json:"slug" binding:"omitempty,max=200" example:"intro-to-systems"`
	Overview  string                `json:"overview" binding:"required" example:"Processes, memory and files."`
	Modules   []ModuleInlineRequest `json:"modules" binding:"omitempty,dive"`
}

// CourseResponse represents a course
type CourseResponse struct {
	ID        int64            `json:"id" example:"1"`
	OwnerID   int64            `json:"ownerId" example:"1"`
	SubjectID int64            `json:"subjectId" example:"1"`
	Title     string           `json:"title" example:"Intro to Systems"`
	Slug      string           `json:"slug" example:"intro-to-systems"`
	Overview  string           `json:"overview"`
	CreatedAt time.Time        `json:"createdAt"`
	Subject   *SubjectResponse `json:"subject,omitempty"`
	Modules   []ModuleResponse `json:"modules,omitempty"`
}

// CourseListResponse is a paginated course list
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// ToModel converts the request into a course model
func (r CourseRequest) ToModel() *models.Course {
	return &models.Course{
		OwnerID:   r.OwnerID,
		SubjectID: r.SubjectID,
		Title:     r.Title,
		Slug:      r.Slug,
		Overview:  r.Overview,
	}
}

// Inlines converts the inline module rows
func (r CourseRequest) Inlines() []models.ModuleInline {
	out := make([]models.ModuleInline, 0, len(r.Modules))
	for _, m := range r.Modules {
		out = append(out, m.ToInline())
	}
	return out
}

// FromCourse converts a course model
func FromCourse(c *models.Course) CourseResponse {
	if c == nil {
		return CourseResponse{}
	}

	resp := CourseResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		SubjectID: c.SubjectID,
		Title:     c.Title,
		Slug:      c.Slug,
		Overview:  c.Overview,
		CreatedAt: c.CreatedAt,
	}
	if c.Subject != nil {
		s := FromSubject(c.Subject)
		resp.Subject = &s
	}
	if len(c.Modules) > 0 {
		resp.Modules = FromModules(c.Modules)
	}
	return resp
}

// FromCourses converts a slice of course models
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}
