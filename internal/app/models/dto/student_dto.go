package dto

import "github.com/necfeedback/coursefeedback/internal/app/models"

// StudentMessageResponse wraps a student profile with a status message
type StudentMessageResponse struct {
	Message string          `json:"message" example:"Enrolled successfully"`
	Student *models.Student `json:"student"`
}
