package models

import "github.com/yigit/educa/internal/pkg/apperrors"

// Kind tags which kind table a Content row points at.
type Kind string

// Registered content kinds
const (
	KindText  Kind = "text"
	KindFile  Kind = "file"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Kinds lists every registered kind in a stable order.
var Kinds = []Kind{KindText, KindFile, KindImage, KindVideo}

// ParseKind rejects anything that is not exactly one of the registered kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", apperrors.ErrInvalidContentKind
	}
	return k, nil
}

// Valid reports whether k is one of the registered kinds
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindFile, KindImage, KindVideo:
		return true
	}
	return false
}

// HasUpload reports whether items of this kind carry an uploaded binary
func (k Kind) HasUpload() bool {
	return k == KindFile || k == KindImage
}

func (k Kind) String() string {
	return string(k)
}
