package models

// Module is an ordered grouping of content inside a course.
type Module struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    int64  `json:"courseId" db:"course_id" validate:"gt=0"`
	Title       string `json:"title" db:"title" validate:"required,max=200"`
	Description string `json:"description" db:"description"`
}

func (m Module) String() string {
	return m.Title
}

// ModuleInline is one row of the inline module editor on a course form.
// ID == 0 creates, Delete removes, anything else updates.
type ModuleInline struct {
	ID          int64
	Title       string
	Description string
	Delete      bool
}
