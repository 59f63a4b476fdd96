package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
)

// QuestionController handles feedback questionnaire operations
type QuestionController struct {
	questionService services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// CreateQuestion adds a question
// @Summary Add a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 200 {object} dto.QuestionMessageResponse "Question added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	q, err := c.questionService.CreateQuestion(ctx.Request.Context(), req.CourseType, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.QuestionMessageResponse{Message: "Question added", Question: q})
}

// ListQuestions lists every question
// @Summary List all questions
// @Tags questions
// @Produce json
// @Success 200 {array} models.FeedbackQuestion
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	c.list(ctx, "")
}

// ListQuestionsByCourseType lists the questionnaire of one course type
// @Summary List questions of a course type
// @Tags questions
// @Produce json
// @Param courseType path string true "Course type" Enums(theory, practical, integrated)
// @Success 200 {array} models.FeedbackQuestion
// @Failure 400 {object} dto.ErrorResponse "Unknown course type"
// @Router /questions/{courseType} [get]
func (c *QuestionController) ListQuestionsByCourseType(ctx *gin.Context) {
	c.list(ctx, ctx.Param("courseType"))
}

func (c *QuestionController) list(ctx *gin.Context, courseType string) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), courseType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion replaces a question's text
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID" Format(uuid)
// @Param request body dto.UpdateQuestionRequest true "Question text"
// @Success 200 {object} dto.QuestionMessageResponse "Updated"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "question")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	q, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.QuestionMessageResponse{Message: "Updated", Question: q})
}

// DeleteQuestion removes a question
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID" Format(uuid)
// @Success 200 {object} dto.QuestionMessageResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id", "question")
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.QuestionMessageResponse{Message: "Deleted"})
}
