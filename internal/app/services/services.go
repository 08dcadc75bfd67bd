package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/repositories"
	"github.com/yigit/educa/internal/pkg/auth"
	"github.com/yigit/educa/internal/pkg/filestorage"
)

// UserStore is the user persistence used by the services
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

// SubjectStore is the subject persistence used by the services
type SubjectStore interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	ListSubjects(ctx context.Context, search string, page, size int) ([]*models.Subject, int64, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, id int64) error
	SubjectExists(ctx context.Context, id int64) (bool, error)
}

// CourseStore is the course persistence used by the services
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) error
	UpdateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, int64, error)
	DeleteCourse(ctx context.Context, id int64) error
	CourseExists(ctx context.Context, id int64) (bool, error)
}

// ModuleStore is the module persistence used by the services
type ModuleStore interface {
	CreateModule(ctx context.Context, module *models.Module) error
	GetModuleByID(ctx context.Context, id int64) (*models.Module, error)
	ListModulesByCourse(ctx context.Context, courseID int64) ([]*models.Module, error)
	UpdateModule(ctx context.Context, module *models.Module) error
	DeleteModule(ctx context.Context, id int64) error
	ModuleExists(ctx context.Context, id int64) (bool, error)
}

// ContentStore is the content persistence used by the services
type ContentStore interface {
	CreateContent(ctx context.Context, content *models.Content) error
	GetContentByID(ctx context.Context, id int64) (*models.Content, error)
	ListContentsByModule(ctx context.Context, moduleID int64) ([]*models.Content, error)
	DeleteContent(ctx context.Context, id int64) error
}

// Services groups every service the HTTP layer and CLI need
type Services struct {
	AuthService    *AuthService
	UserService    UserService
	SubjectService SubjectService
	CourseService  CourseService
	ModuleService  ModuleService
	ContentService ContentService
	ItemService    ItemService
	Registry       *ContentRegistry
}

// NewServices wires the services on top of the repositories
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, jwtService *auth.JWTService, log zerolog.Logger) *Services {
	registry := NewContentRegistry(repos.ItemStores)

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService, log),
		UserService:    NewUserService(repos.UserRepository, log),
		SubjectService: NewSubjectService(repos.SubjectRepository),
		CourseService:  NewCourseService(repos.CourseRepository, repos.SubjectRepository, repos.UserRepository),
		ModuleService:  NewModuleService(repos.ModuleRepository, repos.CourseRepository),
		ContentService: NewContentService(repos.ContentRepository, repos.ModuleRepository, registry),
		ItemService:    NewItemService(registry, repos.UserRepository, storage),
		Registry:       registry,
	}
}
