package dto

import (
	"time"

	"github.com/yigit/educa/internal/app/models"
)

// TextRequest is the body for a text item
type TextRequest struct {
	OwnerID int64  `json:"ownerId,omitempty" example:"1"`
	Title   string `json:"title" binding:"required,max=250" example:"Reading list"`
	Content string `json:"content" binding:"required" example:"Chapter 1 and 2"`
}

// VideoRequest is the body for a video item
type VideoRequest struct {
	OwnerID int64  `json:"ownerId,omitempty" example:"1"`
	Title   string `json:"title" binding:"required,max=250" example:"Lecture 1"`
	URL     string `json:"url" binding:"required,url,max=200" example:"https://www.youtube.com/watch?v=abc"`
}

// UploadForm holds the non-file fields of a file or image upload
type UploadForm struct {
	OwnerID int64  `form:"ownerId"`
	Title   string `form:"title" binding:"required,max=250"`
}

// ItemResponse represents an item of any kind. Only the fields of its kind are set.
type ItemResponse struct {
	ID        int64       `json:"id" example:"5"`
	Kind      models.Kind `json:"kind" example:"text" enums:"text,file,image,video"`
	OwnerID   int64       `json:"ownerId" example:"1"`
	Title     string      `json:"title" example:"Reading list"`
	Content   string      `json:"content,omitempty"`
	File      string      `json:"file,omitempty" example:"files/3f0c.pdf"`
	FileURL   string      `json:"fileUrl,omitempty" example:"http://localhost:8080/uploads/files/3f0c.pdf"`
	URL       string      `json:"url,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ItemListResponse is a paginated item list for one kind
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromItem converts an item of any kind. fileURL maps a stored path to a public URL.
func FromItem(item models.Item, fileURL func(string) string) *ItemResponse {
	if item == nil {
		return nil
	}

	b := item.Base()
	resp := &ItemResponse{
		ID:        b.ID,
		Kind:      item.Kind(),
		OwnerID:   b.OwnerID,
		Title:     b.Title,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	switch it := item.(type) {
	case *models.Text:
		resp.Content = it.Content
	case *models.Video:
		resp.URL = it.URL
	}
	if p, ok := models.UploadPath(item); ok {
		resp.File = p
		if fileURL != nil {
			resp.FileURL = fileURL(p)
		}
	}
	return resp
}

// FromItems converts a slice of items
func FromItems(items []models.Item, fileURL func(string) string) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *FromItem(it, fileURL))
	}
	return out
}
