package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingCategory is one label of the fixed 5-point answer scale
type RatingCategory string

const (
	RatingExcellent RatingCategory = "Excellent"
	RatingGood      RatingCategory = "Good"
	RatingAverage   RatingCategory = "Average"
	RatingPoor      RatingCategory = "Poor"
	RatingVeryPoor  RatingCategory = "Very Poor"
)

// RatingCategories lists the scale from best to worst
var RatingCategories = []RatingCategory{RatingExcellent, RatingGood, RatingAverage, RatingPoor, RatingVeryPoor}

// Points maps a category to its weight (Excellent=5 … Very Poor=1); unknown labels score 0
func (r RatingCategory) Points() int {
	switch r {
	case RatingExcellent:
		return 5
	case RatingGood:
		return 4
	case RatingAverage:
		return 3
	case RatingPoor:
		return 2
	case RatingVeryPoor:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether r is an exact scale label
func (r RatingCategory) IsValid() bool {
	return r.Points() > 0
}

// FeedbackResponse is a write-once record of one student's ratings for one faculty member
// of a course. Course, faculty and question texts are snapshots taken at submission time.
type FeedbackResponse struct {
	ID          uuid.UUID      `json:"_id"`
	StudentID   uuid.UUID      `json:"studentId"`
	CourseID    uuid.UUID      `json:"courseId"`
	CourseName  string         `json:"courseName"`
	CourseType  string         `json:"courseType"`
	FacultyName string         `json:"facultyName"`
	Responses   []ResponseItem `json:"responses"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ResponseItem is the answer to one question
type ResponseItem struct {
	QuestionID   *uuid.UUID     `json:"questionId,omitempty"`
	QuestionText string         `json:"questionText"`
	Answer       RatingCategory `json:"answer"`
}

// FeedbackFilter selects responses for analysis; an empty FacultyName means all faculty
type FeedbackFilter struct {
	CourseID    uuid.UUID
	FacultyName string
}
