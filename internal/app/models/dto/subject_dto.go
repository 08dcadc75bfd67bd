package dto

import "github.com/yigit/educa/internal/app/models"

// SubjectRequest is the body for creating or updating a subject.
// An empty slug is derived from the title.
type SubjectRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"Mathematics"`
	Slug  string `json:"slug" binding:"omitempty,max=200" example:"mathematics"`
}

// SubjectResponse represents a subject
type SubjectResponse struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Mathematics"`
	Slug  string `json:"slug" example:"mathematics"`
}

// SubjectListResponse is a paginated subject list
type SubjectListResponse struct {
	Subjects   []SubjectResponse `json:"subjects"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ToModel converts the request into a subject model
func (r SubjectRequest) ToModel() *models.Subject {
	return &models.Subject{Title: r.Title, Slug: r.Slug}
}

// FromSubject converts a subject model
func FromSubject(s *models.Subject) SubjectResponse {
	if s == nil {
		return SubjectResponse{}
	}
	return SubjectResponse{ID: s.ID, Title: s.Title, Slug: s.Slug}
}

// FromSubjects converts a slice of subject models
func FromSubjects(subjects []*models.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, FromSubject(s))
	}
	return out
}
