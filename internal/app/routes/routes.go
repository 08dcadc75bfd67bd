package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/controllers"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/middleware"
)

// UploadsPath is where stored uploads are served from
const UploadsPath = "/uploads"

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	subjectController *controllers.SubjectController,
	courseController *controllers.CourseController,
	moduleController *controllers.ModuleController,
	contentController *controllers.ContentController,
	itemController *controllers.ItemController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
		auth.PUT("/password", authMiddleware.JWTAuth(), userController.ChangePassword)
	}

	// --- Staff-only admin surface ---
	adminGroup := v1.Group("/admin")
	adminGroup.Use(authMiddleware.JWTAuth(), authMiddleware.StaffRequired())
	{
		adminGroup.GET("/models", adminController.ListModels)

		subjects := adminGroup.Group("/subjects")
		{
			subjects.GET("", subjectController.ListSubjects)
			subjects.POST("", subjectController.CreateSubject)
			subjects.GET("/:id", subjectController.GetSubjectByID)
			subjects.PUT("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		courses := adminGroup.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
			courses.GET("/:id/modules", moduleController.ListModulesByCourse)
		}

		modules := adminGroup.Group("/modules")
		{
			modules.POST("", moduleController.CreateModule)
			modules.GET("/:id", moduleController.GetModuleByID)
			modules.PUT("/:id", moduleController.UpdateModule)
			modules.DELETE("/:id", moduleController.DeleteModule)
			modules.GET("/:id/contents", contentController.ListContentsByModule)
		}

		contents := adminGroup.Group("/contents")
		{
			contents.POST("", contentController.CreateContent)
			contents.GET("/:id", contentController.GetContent)
			contents.GET("/:id/item", contentController.ResolveContent)
			contents.DELETE("/:id", contentController.DeleteContent)
		}

		items := adminGroup.Group("/items/:kind")
		{
			items.GET("", itemController.ListItems)
			items.POST("", itemController.CreateItem)
			items.GET("/:id", itemController.GetItem)
			items.PUT("/:id", itemController.UpdateItem)
			items.DELETE("/:id", itemController.DeleteItem)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}

// SetupUploads serves the upload store read-only under UploadsPath
func SetupUploads(router *gin.Engine, storagePath string) {
	router.Static(UploadsPath, storagePath)
}
