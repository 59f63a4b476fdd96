package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/controllers"
	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	Course   *controllers.CourseController
	Upload   *controllers.UploadController
	Question *controllers.QuestionController
	Student  *controllers.StudentController
	Feedback *controllers.FeedbackController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/admin/register", c.Auth.RegisterAdmin)
	api.POST("/admin/login", c.Auth.LoginAdmin)
	api.POST("/student/register", c.Auth.RegisterStudent)
	api.POST("/student/login", c.Auth.LoginStudent)

	// --- Public catalog routes ---
	courses := api.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.GET("/:id", c.Course.GetCourse)
		courses.GET("/:id/faculties", c.Course.GetFaculties)
	}

	questions := api.Group("/questions")
	{
		questions.GET("", c.Question.ListQuestions)
		questions.GET("/:courseType", c.Question.ListQuestionsByCourseType)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	admin := authenticated.Group("")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/courses", c.Course.CreateCourse)
		admin.PUT("/courses/:id", c.Course.UpdateCourse)
		admin.DELETE("/courses/:id", c.Course.DeleteCourse)
		admin.POST("/upload-coursebatch", c.Upload.UploadCourseBatch)

		admin.POST("/questions", c.Question.CreateQuestion)
		admin.PUT("/questions/:id", c.Question.UpdateQuestion)
		admin.DELETE("/questions/:id", c.Question.DeleteQuestion)

		admin.GET("/feedback/analysis/:courseId", c.Feedback.GetAnalysis)
		admin.GET("/feedback/analysis/:courseId/export", c.Feedback.ExportAnalysis)
	}

	students := authenticated.Group("/students")
	{
		students.GET("/courses", c.Student.ListCourses)

		self := students.Group("/:id")
		self.Use(authMiddleware.SelfOrAdmin("id"))
		{
			self.GET("", c.Student.GetStudent)
			self.POST("/enroll/:courseId", c.Student.Enroll)
			self.PUT("/feedback/:courseId", c.Student.MarkFeedbackGiven)
		}
	}

	authenticated.POST("/feedback", c.Feedback.SubmitFeedback)
}

// HealthCheck reports that the server is up
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
