package models

import "time"

// ItemBase holds the fields shared by every content kind.
type ItemBase struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"ownerId" db:"owner_id" validate:"gt=0"`
	Title     string    `json:"title" db:"title" validate:"required,max=250"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Base lets embedding types satisfy Item
func (b *ItemBase) Base() *ItemBase {
	return b
}

func (b *ItemBase) String() string {
	return b.Title
}

// Item is a row of one of the kind tables.
type Item interface {
	Base() *ItemBase
	Kind() Kind
}

// Text is a block of text content
type Text struct {
	ItemBase
	Content string `json:"content" db:"content" validate:"required"`
}

// Kind implements Item
func (*Text) Kind() Kind { return KindText }

// File is an uploaded document stored under files/
type File struct {
	ItemBase
	File string `json:"file" db:"file"`
}

// Kind implements Item
func (*File) Kind() Kind { return KindFile }

// Image is an uploaded picture stored under images/
type Image struct {
	ItemBase
	File string `json:"file" db:"file"`
}

// Kind implements Item
func (*Image) Kind() Kind { return KindImage }

// Video is an embeddable external video
type Video struct {
	ItemBase
	URL string `json:"url" db:"url" validate:"required,url,max=200"`
}

// Kind implements Item
func (*Video) Kind() Kind { return KindVideo }

// NewItem returns an empty item of kind k, or nil for an unknown kind.
func NewItem(k Kind) Item {
	switch k {
	case KindText:
		return &Text{}
	case KindFile:
		return &File{}
	case KindImage:
		return &Image{}
	case KindVideo:
		return &Video{}
	}
	return nil
}

// UploadPath returns the stored upload path for file-bearing items
func UploadPath(item Item) (string, bool) {
	switch it := item.(type) {
	case *File:
		return it.File, true
	case *Image:
		return it.File, true
	}
	return "", false
}
