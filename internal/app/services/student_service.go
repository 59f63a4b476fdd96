package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

// StudentService handles student profiles and enrollments
type StudentService interface {
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*models.Student, error)
	MarkFeedbackGiven(ctx context.Context, studentID, courseID uuid.UUID) (*models.Student, error)
}

type studentServiceImpl struct {
	students StudentStore
	courses  CourseStore
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, courses CourseStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students: students,
		courses:  courses,
		logger:   logger,
	}
}

// GetStudent returns a student profile with its enrolled courses
func (s *studentServiceImpl) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStudentNotFound, "Student not found")
	}
	return student, nil
}

// Enroll adds a course to the student's enrollments. Enrolling twice is rejected
// and leaves a single entry.
func (s *studentServiceImpl) Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*models.Student, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, notFound(err, apperrors.ErrCourseNotFound, "Course not found")
	}

	inserted, err := s.students.Enroll(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, apperrors.NewBadRequestError(apperrors.ErrAlreadyEnrolled, "Already enrolled")
	}

	s.logger.Info().Str("studentID", studentID.String()).Str("courseID", courseID.String()).Msg("Student enrolled")
	return s.GetStudent(ctx, studentID)
}

// MarkFeedbackGiven records that the student rated the course
func (s *studentServiceImpl) MarkFeedbackGiven(ctx context.Context, studentID, courseID uuid.UUID) (*models.Student, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	updated, err := s.students.MarkFeedbackGiven(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewBadRequestError(apperrors.ErrNotEnrolled, "Not enrolled in this course")
	}
	return s.GetStudent(ctx, studentID)
}
