package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
)

// StudentController handles student profile and enrollment operations
type StudentController struct {
	studentService services.StudentService
	courseService  services.CourseService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, courseService services.CourseService) *StudentController {
	return &StudentController{
		studentService: studentService,
		courseService:  courseService,
	}
}

// ListCourses lists the catalog for students
// @Summary List courses available to students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Router /students/courses [get]
func (c *StudentController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context(), dto.CourseListQuery{})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetStudent returns a student profile with enrolled courses
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} models.Student
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "student")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// Enroll enrolls a student in a course
// @Summary Enroll in a course
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" Format(uuid)
// @Param courseId path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.StudentMessageResponse "Enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Already enrolled"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /students/{id}/enroll/{courseId} [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	studentID, ok := uuidParam(ctx, "id", "student")
	if !ok {
		return
	}
	courseID, ok := uuidParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	student, err := c.studentService.Enroll(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentMessageResponse{Message: "Enrolled successfully", Student: student})
}

// MarkFeedbackGiven records that a student rated an enrolled course
// @Summary Mark feedback given
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" Format(uuid)
// @Param courseId path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.StudentMessageResponse "Feedback submitted"
// @Failure 400 {object} dto.ErrorResponse "Not enrolled in this course"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/feedback/{courseId} [put]
func (c *StudentController) MarkFeedbackGiven(ctx *gin.Context) {
	studentID, ok := uuidParam(ctx, "id", "student")
	if !ok {
		return
	}
	courseID, ok := uuidParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	student, err := c.studentService.MarkFeedbackGiven(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentMessageResponse{Message: "Feedback submitted", Student: student})
}
