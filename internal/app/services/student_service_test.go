package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

func TestEnrollAndMarkFeedback(t *testing.T) {
	ctx := context.Background()
	course := &models.Course{ID: uuid.New(), CourseCode: "CS3401"}
	student := &models.Student{ID: uuid.New(), Name: "Asha"}
	svc := NewStudentService(newFakeStudents(student), &fakeCourses{courses: []*models.Course{course}}, zerolog.Nop())

	_, err := svc.MarkFeedbackGiven(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	assert.Equal(t, "Not enrolled in this course", apperrors.Message(err, ""))

	got, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, got.EnrolledCourses, 1)
	assert.Equal(t, models.StatusEnrolled, got.EnrolledCourses[0].Status)

	_, err = svc.Enroll(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	assert.Equal(t, "Already enrolled", apperrors.Message(err, ""))
	assert.Len(t, student.EnrolledCourses, 1)

	got, err = svc.MarkFeedbackGiven(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFeedbackGiven, got.EnrolledCourses[0].Status)
}

func TestEnrollUnknownRecords(t *testing.T) {
	ctx := context.Background()
	student := &models.Student{ID: uuid.New()}
	svc := NewStudentService(newFakeStudents(student), &fakeCourses{}, zerolog.Nop())

	_, err := svc.Enroll(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, "Student not found", apperrors.Message(err, ""))

	_, err = svc.Enroll(ctx, student.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Equal(t, "Course not found", apperrors.Message(err, ""))
	assert.Empty(t, student.EnrolledCourses)
}
