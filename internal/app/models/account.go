package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus tracks whether a student has rated an enrolled course
type EnrollmentStatus string

const (
	StatusEnrolled      EnrollmentStatus = "enrolled"
	StatusFeedbackGiven EnrollmentStatus = "feedback_given"
)

// Admin manages the catalog and reads feedback analysis
type Admin struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Student enrolls in courses and submits feedback
type Student struct {
	ID              uuid.UUID    `json:"_id"`
	Name            string       `json:"name"`
	RollNo          string       `json:"rollno"`
	Email           string       `json:"email"`
	Password        string       `json:"-"`
	EnrolledCourses []Enrollment `json:"enrolledCourses"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Enrollment is one (student, course) entry. Course is populated on profile reads and
// stays nil when the course has since been deleted.
type Enrollment struct {
	CourseID uuid.UUID        `json:"courseId"`
	Status   EnrollmentStatus `json:"status"`
	Course   *Course          `json:"course,omitempty"`
}

// Enrollment returns the entry for courseID, if any
func (s *Student) Enrollment(courseID uuid.UUID) (Enrollment, bool) {
	for _, e := range s.EnrolledCourses {
		if e.CourseID == courseID {
			return e, true
		}
	}
	return Enrollment{}, false
}
