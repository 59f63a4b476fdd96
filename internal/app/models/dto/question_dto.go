package dto

import "github.com/necfeedback/coursefeedback/internal/app/models"

// CreateQuestionRequest represents question creation data
type CreateQuestionRequest struct {
	CourseType string `json:"courseType" binding:"required,coursetype"`
	Question   string `json:"question" binding:"required"`
}

// UpdateQuestionRequest represents question update data
type UpdateQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// QuestionMessageResponse wraps a question with a status message
type QuestionMessageResponse struct {
	Message  string                   `json:"message" example:"Question added"`
	Question *models.FeedbackQuestion `json:"question,omitempty"`
}
