package dto

import "github.com/necfeedback/coursefeedback/internal/app/models"

// FeedbackItemRequest is the answer to one question
type FeedbackItemRequest struct {
	QuestionID   string `json:"questionId" binding:"omitempty,uuid"`
	QuestionText string `json:"questionText" binding:"required"`
	Answer       string `json:"answer" binding:"required,rating"`
}

// SubmitFeedbackRequest represents one feedback submission
type SubmitFeedbackRequest struct {
	StudentID    string                `json:"studentId"`
	CourseID     string                `json:"courseId"`
	CourseName   string                `json:"courseName"`
	CourseType   string                `json:"courseType"`
	FacultyName  string                `json:"facultyName"`
	StudentEmail string                `json:"studentEmail" binding:"omitempty,email"`
	StudentName  string                `json:"studentName"`
	Responses    []FeedbackItemRequest `json:"responses" binding:"dive"`
}

// FeedbackMessageResponse wraps a stored feedback response
type FeedbackMessageResponse struct {
	Message  string                   `json:"message" example:"Feedback saved successfully"`
	Feedback *models.FeedbackResponse `json:"feedback"`
}

// RatingCounts holds the number of answers per rating category
type RatingCounts struct {
	Excellent int `json:"Excellent"`
	Good      int `json:"Good"`
	Average   int `json:"Average"`
	Poor      int `json:"Poor"`
	VeryPoor  int `json:"Very Poor"`
}

// Total returns the sum of all five counters
func (c RatingCounts) Total() int {
	return c.Excellent + c.Good + c.Average + c.Poor + c.VeryPoor
}

// CSVRow is one question of the analysis flattened for tabular export
type CSVRow struct {
	Question string `json:"Question"`
	RatingCounts
}

// QuestionAverage is the weighted score of one question
type QuestionAverage struct {
	Question string  `json:"question"`
	Average  float64 `json:"average" example:"4.67"`
}

// FeedbackAnalysisResponse is the aggregated view of a course's feedback
type FeedbackAnalysisResponse struct {
	TotalResponses int                     `json:"totalResponses"`
	FacultyName    string                  `json:"facultyName" example:"All Faculty"`
	Summary        map[string]RatingCounts `json:"summary"`
	CSVData        []CSVRow                `json:"csvData"`
	AverageRatings []QuestionAverage       `json:"averageRatings"`
}

// NoFeedbackResponse is returned when a course has no matching responses yet
type NoFeedbackResponse struct {
	Message string `json:"message" example:"No feedback yet"`
}
