package repositories

import (
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	SubjectRepository *SubjectRepository
	CourseRepository  *CourseRepository
	ModuleRepository  *ModuleRepository
	ContentRepository *ContentRepository
	ItemStores        map[models.Kind]ItemStore
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(pool),
		SubjectRepository: NewSubjectRepository(pool),
		CourseRepository:  NewCourseRepository(pool),
		ModuleRepository:  NewModuleRepository(pool),
		ContentRepository: NewContentRepository(pool),
		ItemStores:        NewItemStores(pool),
	}
}
