package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/educa/internal/app/admin"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/app/services"
	"github.com/yigit/educa/internal/middleware"
	"github.com/yigit/educa/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
	site          *admin.Site
}

// NewCourseController creates a new CourseController. The site supplies the
// searchable columns of the course list.
func NewCourseController(courseService services.CourseService, site *admin.Site) *CourseController {
	return &CourseController{
		courseService: courseService,
		site:          site,
	}
}

// CreateCourse handles course creation together with inline modules
// @Summary Create a new course
// @Description Creates a course and its inline modules in one transaction. ownerId defaults to the caller and an empty slug is derived from the title.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate slug"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := req.ToModel()
	course.OwnerID = ownerOrCurrentUser(ctx, req.OwnerID)

	created, err := c.courseService.CreateCourse(ctx.Request.Context(), course, req.Inlines())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCourse(created)))
}

// GetCourseByID retrieves a course with its subject and modules
// @Summary Get course details
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// ListCourses lists courses newest first
// @Summary List courses
// @Description Lists courses newest first with search, subject and creation date filters
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in title and overview"
// @Param subjectId query int false "Filter by subject"
// @Param ownerId query int false "Filter by owner"
// @Param created query string false "Creation date filter" Enums(today, past_7_days, this_month, this_year)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	subjectID, ok := parseOptionalID(ctx, "subjectId")
	if !ok {
		return
	}
	ownerID, ok := parseOptionalID(ctx, "ownerId")
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	filter := models.CourseFilter{
		Search:       ctx.Query("q"),
		SearchFields: c.site.SearchFields(admin.ModelCourse),
		SubjectID:    subjectID,
		OwnerID:      ownerID,
		Created:      models.CreatedFilter(ctx.Query("created")),
		Page:         page,
		Size:         size,
	}

	courses, total, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses:    dto.FromCourses(courses),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateCourse updates a course and applies its inline module changes
// @Summary Update a course
// @Description Updates the course row. Inline modules without id are created, with id are updated, and with delete=true are removed.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate slug"
// @Failure 404 {object} dto.ErrorResponse "Course or inline module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := req.ToModel()
	course.ID = id

	updated, err := c.courseService.UpdateCourse(ctx.Request.Context(), course, req.Inlines())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(updated)))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course together with its modules and their contents
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}))
}
