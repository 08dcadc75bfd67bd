package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/educa/internal/app/admin"
	appControllers "github.com/yigit/educa/internal/app/controllers"
	appMigrations "github.com/yigit/educa/internal/app/migrations"
	appRepos "github.com/yigit/educa/internal/app/repositories"
	appRoutes "github.com/yigit/educa/internal/app/routes"
	appServices "github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/config"
	"github.com/yigit/educa/internal/db"
	appMiddleware "github.com/yigit/educa/internal/middleware"
	pkgAuth "github.com/yigit/educa/internal/pkg/auth"
	"github.com/yigit/educa/internal/pkg/filestorage"
	"github.com/yigit/educa/internal/pkg/helpers"
	"github.com/yigit/educa/internal/pkg/logger"
	"github.com/yigit/educa/internal/seed"
	schema "github.com/yigit/educa/migrations"
)

// DefaultConfigPath is used when no config file is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Site        *admin.Site
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger

	AuthMiddleware    *appMiddleware.AuthMiddleware
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	AdminController   *appControllers.AdminController
	SubjectController *appControllers.SubjectController
	CourseController  *appControllers.CourseController
	ModuleController  *appControllers.ModuleController
	ContentController *appControllers.ContentController
	ItemController    *appControllers.ItemController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Stringer("logLevel", logLevel).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies the embedded schema files
func RunMigrations(ctx context.Context, pool db.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, schema.FS, lgr).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects and migrates the database
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool db.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pool)

	var err error
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + appRoutes.UploadsPath
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, deps.JWTService, lgr)
	deps.Site = admin.Default()

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.AdminController = appControllers.NewAdminController(deps.Site)
	deps.SubjectController = appControllers.NewSubjectController(deps.Services.SubjectService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService, deps.Site)
	deps.ModuleController = appControllers.NewModuleController(deps.Services.ModuleService)
	deps.ContentController = appControllers.NewContentController(deps.Services.ContentService, deps.Services.ItemService.FileURL)
	deps.ItemController = appControllers.NewItemController(deps.Services.ItemService, logger.WithComponent("items"))

	return deps, nil
}

// SeedDefaults writes the default subjects and admin user when enabled
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	return seed.CreateDefaultData(ctx, deps.Services.SubjectService, deps.Services.AuthService, seed.Admin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterBindingValidators()

	router := gin.New()
	router.MaxMultipartMemory = 32 << 20
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupUploads(router, cfg.Server.StoragePath)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.AdminController,
		deps.SubjectController,
		deps.CourseController,
		deps.ModuleController,
		deps.ContentController,
		deps.ItemController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
