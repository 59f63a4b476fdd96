package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackQuestion is one questionnaire entry for every course of a course type
type FeedbackQuestion struct {
	ID         uuid.UUID  `json:"_id"`
	CourseType CourseType `json:"courseType"`
	Question   string     `json:"question"`
	CreatedAt  time.Time  `json:"createdAt"`
}
