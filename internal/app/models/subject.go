package models

// Subject is the top-level catalog category.
type Subject struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title" validate:"required,max=200"`
	Slug  string `json:"slug" db:"slug" validate:"required,slug,max=200"`
}

func (s Subject) String() string {
	return s.Title
}
