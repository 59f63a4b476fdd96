package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.CourseMessageResponse "Course added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseMessageResponse{Message: "Course added successfully", Course: course})
}

// ListCourses lists courses with optional filters
// @Summary List courses
// @Tags courses
// @Produce json
// @Param program query string false "Program" Enums(BE, BTECH)
// @Param dept query string false "Department"
// @Param year query int false "Year" minimum(1) maximum(4)
// @Param sem query int false "Semester" minimum(1) maximum(8)
// @Param courseType query string false "Course type" Enums(theory, practical, integrated)
// @Success 200 {array} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query dto.CourseListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course by ID
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// GetFaculties lists the faculty members of a course
// @Summary List a course's faculty
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {array} string
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/faculties [get]
func (c *CourseController) GetFaculties(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "course")
	if !ok {
		return
	}

	faculty, err := c.courseService.GetFaculties(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculty)
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.CourseMessageResponse "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "course")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseMessageResponse{Message: "Course updated", Course: course})
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.CourseMessageResponse "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "course")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseMessageResponse{Message: "Course deleted"})
}
