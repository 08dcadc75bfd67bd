package dto

import "github.com/yigit/educa/internal/app/models"

// ContentRequest places an existing item into a module
type ContentRequest struct {
	ModuleID int64  `json:"moduleId" binding:"required,gt=0" example:"1"`
	Kind     string `json:"kind" binding:"required" example:"text" enums:"text,file,image,video"`
	ObjectID int64  `json:"objectId" binding:"required,gt=0" example:"5"`
}

// ContentResponse represents a content entry. Item is null when the
// referenced row no longer exists.
type ContentResponse struct {
	ID       int64         `json:"id" example:"1"`
	ModuleID int64         `json:"moduleId" example:"1"`
	Kind     models.Kind   `json:"kind" example:"text"`
	ObjectID int64         `json:"objectId" example:"5"`
	Item     *ItemResponse `json:"item"`
}

// FromContent converts a content entry along with its resolved item, if any
func FromContent(c *models.Content, fileURL func(string) string) ContentResponse {
	if c == nil {
		return ContentResponse{}
	}
	return ContentResponse{
		ID:       c.ID,
		ModuleID: c.ModuleID,
		Kind:     c.Kind,
		ObjectID: c.ObjectID,
		Item:     FromItem(c.Item, fileURL),
	}
}

// FromContents converts a slice of content entries
func FromContents(contents []*models.Content, fileURL func(string) string) []ContentResponse {
	out := make([]ContentResponse, 0, len(contents))
	for _, c := range contents {
		out = append(out, FromContent(c, fileURL))
	}
	return out
}
