package models

import "time"

// Course belongs to a subject and an owner and groups modules.
type Course struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"ownerId" db:"owner_id" validate:"gt=0"`
	SubjectID int64     `json:"subjectId" db:"subject_id" validate:"gt=0"`
	Title     string    `json:"title" db:"title" validate:"required,max=200"`
	Slug      string    `json:"slug" db:"slug" validate:"required,slug,max=200"`
	Overview  string    `json:"overview" db:"overview" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Subject *Subject  `json:"subject,omitempty" validate:"-"`
	Modules []*Module `json:"modules,omitempty" validate:"-"`
}

func (c Course) String() string {
	return c.Title
}

// CreatedFilter selects courses by creation date relative to now.
type CreatedFilter string

// Created date filter choices offered on the course list
const (
	CreatedAny       CreatedFilter = ""
	CreatedToday     CreatedFilter = "today"
	CreatedPast7Days CreatedFilter = "past_7_days"
	CreatedThisMonth CreatedFilter = "this_month"
	CreatedThisYear  CreatedFilter = "this_year"
)

// Valid reports whether f is a known filter choice
func (f CreatedFilter) Valid() bool {
	switch f {
	case CreatedAny, CreatedToday, CreatedPast7Days, CreatedThisMonth, CreatedThisYear:
		return true
	}
	return false
}

// Range returns the half-open [from, to) window for f relative to now.
// ok is false for CreatedAny.
func (f CreatedFilter) Range(now time.Time) (from, to time.Time, ok bool) {
	y, m, d := now.Date()
	loc := now.Location()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	switch f {
	case CreatedToday:
		return today, tomorrow, true
	case CreatedPast7Days:
		return today.AddDate(0, 0, -7), tomorrow, true
	case CreatedThisMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, 0), true
	case CreatedThisYear:
		first := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// CourseFilter holds the course list query
type CourseFilter struct {
	Search       string
	SearchFields []string
	SubjectID    *int64
	OwnerID      *int64
	Created      CreatedFilter
	Page         int
	Size         int
}
