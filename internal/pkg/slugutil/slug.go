// Package slugutil derives URL-safe identifiers from titles.
package slugutil

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxLength matches the width of the slug columns.
const MaxLength = 200

// Make lowercases the title, transliterates it to ASCII and joins words with
// hyphens. The result never exceeds MaxLength and never ends in a hyphen.
func Make(title string) string {
	s := slug.Make(title)
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	return s != "" && len(s) <= MaxLength && slug.IsSlug(s)
}

// Resolve returns the explicit slug when given, otherwise one derived from title.
func Resolve(explicit, title string) string {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		return explicit
	}
	return Make(title)
}
