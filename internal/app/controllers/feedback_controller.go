package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

// FeedbackController handles feedback submission and analysis
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback stores a student's ratings for one faculty member of a course
// @Summary Submit feedback
// @Description Stores the ratings, marks the enrollment as rated and mails a confirmation. Mail failures do not fail the request.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} dto.FeedbackMessageResponse "Feedback saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 403 {object} dto.ErrorResponse "Students may only submit their own feedback"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if !bindJSON(ctx, &req) {
		return
	}

	// an empty studentId is rejected by the service as a missing field
	userID, role, ok := middleware.CurrentUser(ctx)
	studentID := strings.TrimSpace(req.StudentID)
	if !ok || (role != models.RoleAdmin && studentID != "" && !strings.EqualFold(studentID, userID.String())) {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("Students may only submit their own feedback"))
		return
	}

	fb, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FeedbackMessageResponse{Message: "Feedback saved successfully", Feedback: fb})
}

// GetAnalysis aggregates the feedback of a course
// @Summary Feedback analysis
// @Description Per-question rating counts and weighted averages, optionally for one faculty member. Answers {message:"No feedback yet"} when nothing matches.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID" Format(uuid)
// @Param faculty query string false "Faculty name"
// @Success 200 {object} dto.FeedbackAnalysisResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/analysis/{courseId} [get]
func (c *FeedbackController) GetAnalysis(ctx *gin.Context) {
	courseID, ok := uuidParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	analysis, err := c.feedbackService.AnalyzeFeedback(ctx.Request.Context(), courseID, ctx.Query("faculty"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, analysis)
}

// ExportAnalysis downloads the feedback analysis as CSV
// @Summary Export feedback analysis
// @Tags feedback
// @Produce text/csv
// @Security BearerAuth
// @Param courseId path string true "Course ID" Format(uuid)
// @Param faculty query string false "Faculty name"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /feedback/analysis/{courseId}/export [get]
func (c *FeedbackController) ExportAnalysis(ctx *gin.Context) {
	courseID, ok := uuidParam(ctx, "courseId", "course")
	if !ok {
		return
	}
	faculty := ctx.Query("faculty")

	var buf bytes.Buffer
	if err := c.feedbackService.ExportAnalysis(ctx.Request.Context(), courseID, faculty, &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	name := "feedback-" + courseID.String()
	if faculty != "" {
		name += "-" + fileSafe(faculty)
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, name))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// fileSafe keeps letters, digits and dashes, replacing anything else with '_'
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
