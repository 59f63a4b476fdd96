package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/necfeedback/coursefeedback/internal/app/models"
)

// Store interfaces are satisfied by the repositories package.

// AdminStore persists admin accounts
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByName(ctx context.Context, name string) (*models.Admin, error)
	GetFirst(ctx context.Context) (*models.Admin, error)
}

// StudentStore persists students and their enrollments
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error)
	GetByEmailOrRollNo(ctx context.Context, email, rollNo string) (*models.Student, error)
	Enroll(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
	MarkFeedbackGiven(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
}

// CourseStore persists the course catalog
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuestionStore persists the feedback questionnaire
type QuestionStore interface {
	Create(ctx context.Context, q *models.FeedbackQuestion) error
	List(ctx context.Context, courseType models.CourseType) ([]*models.FeedbackQuestion, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*models.FeedbackQuestion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCourseType(ctx context.Context, courseType models.CourseType) (int, error)
}

// FeedbackStore persists submitted feedback
type FeedbackStore interface {
	Create(ctx context.Context, fb *models.FeedbackResponse) error
	List(ctx context.Context, filter models.FeedbackFilter) ([]*models.FeedbackResponse, error)
}
