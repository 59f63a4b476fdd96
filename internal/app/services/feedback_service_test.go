package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

type feedbackFixture struct {
	feedback *fakeFeedback
	students *fakeStudents
	admins   *fakeAdmins
	notifier *recordingNotifier
	student  *models.Student
	courseID uuid.UUID
}

func newFeedbackFixture() *feedbackFixture {
	courseID := uuid.New()
	student := &models.Student{
		ID:              uuid.New(),
		Name:            "Asha",
		RollNo:          "21CS001",
		Email:           "asha@nec.edu.in",
		EnrolledCourses: []models.Enrollment{{CourseID: courseID, Status: models.StatusEnrolled}},
	}
	return &feedbackFixture{
		feedback: &fakeFeedback{},
		students: newFakeStudents(student),
		admins:   &fakeAdmins{},
		notifier: &recordingNotifier{},
		student:  student,
		courseID: courseID,
	}
}

func (f *feedbackFixture) service(sender SenderConfig) FeedbackService {
	return NewFeedbackService(f.feedback, f.students, f.admins, f.notifier, sender, zerolog.Nop())
}

func (f *feedbackFixture) request() dto.SubmitFeedbackRequest {
	return dto.SubmitFeedbackRequest{
		StudentID:   f.student.ID.String(),
		CourseID:    f.courseID.String(),
		CourseName:  "Algorithms",
		CourseType:  "theory",
		FacultyName: "Dr. Rao",
		Responses: []dto.FeedbackItemRequest{
			{QuestionID: uuid.NewString(), QuestionText: "Clarity", Answer: "Excellent"},
			{QuestionText: "Pace", Answer: "Good"},
		},
	}
}

func TestSubmitFeedbackStoresMarksAndNotifies(t *testing.T) {
	f := newFeedbackFixture()
	svc := f.service(SenderConfig{AccountUser: "mailer@nec.edu.in"})

	fb, err := svc.SubmitFeedback(context.Background(), f.request())
	require.NoError(t, err)

	require.Len(t, f.feedback.saved, 1)
	assert.NotEqual(t, uuid.Nil, fb.ID)
	require.Len(t, fb.Responses, 2)
	assert.NotNil(t, fb.Responses[0].QuestionID)
	assert.Nil(t, fb.Responses[1].QuestionID)
	assert.Equal(t, models.RatingGood, fb.Responses[1].Answer)

	enrollment, ok := f.student.Enrollment(f.courseID)
	require.True(t, ok)
	assert.Equal(t, models.StatusFeedbackGiven, enrollment.Status)

	require.Len(t, f.notifier.sent, 1)
	msg := f.notifier.sent[0]
	assert.Equal(t, "asha@nec.edu.in", msg.To)
	assert.Equal(t, "Asha", msg.StudentName)
	assert.Equal(t, "mailer@nec.edu.in", msg.From)
	assert.Equal(t, "Algorithms", msg.CourseName)
	assert.Equal(t, "Dr. Rao", msg.FacultyName)
}

func TestSubmitFeedbackSenderPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		sender SenderConfig
		admins []*models.Admin
		want   string
	}{
		{
			name:   "override first",
			sender: SenderConfig{Override: "noreply@nec.edu.in", AdminEmail: "office@nec.edu.in", AccountUser: "mailer@nec.edu.in"},
			admins: []*models.Admin{{Email: "first@nec.edu.in"}},
			want:   "noreply@nec.edu.in",
		},
		{
			name:   "configured admin address",
			sender: SenderConfig{AdminEmail: "office@nec.edu.in", AccountUser: "mailer@nec.edu.in"},
			admins: []*models.Admin{{Email: "first@nec.edu.in"}},
			want:   "office@nec.edu.in",
		},
		{
			name:   "first admin account",
			sender: SenderConfig{AccountUser: "mailer@nec.edu.in"},
			admins: []*models.Admin{{Email: "first@nec.edu.in"}, {Email: "second@nec.edu.in"}},
			want:   "first@nec.edu.in",
		},
		{
			name:   "mail account",
			sender: SenderConfig{AccountUser: "mailer@nec.edu.in"},
			want:   "mailer@nec.edu.in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFeedbackFixture()
			f.admins.admins = tt.admins

			_, err := f.service(tt.sender).SubmitFeedback(context.Background(), f.request())
			require.NoError(t, err)
			require.Len(t, f.notifier.sent, 1)
			assert.Equal(t, tt.want, f.notifier.sent[0].From)
		})
	}
}

func TestSubmitFeedbackUsesGivenRecipient(t *testing.T) {
	f := newFeedbackFixture()
	req := f.request()
	req.StudentEmail = "other@nec.edu.in"
	req.StudentName = "Other"

	_, err := f.service(SenderConfig{}).SubmitFeedback(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "other@nec.edu.in", f.notifier.sent[0].To)
	assert.Equal(t, "Other", f.notifier.sent[0].StudentName)
}

func TestSubmitFeedbackSurvivesSideEffectFailures(t *testing.T) {
	f := newFeedbackFixture()
	f.notifier.err = errors.New("smtp down")
	f.students.markErr = errors.New("db down")

	fb, err := f.service(SenderConfig{}).SubmitFeedback(context.Background(), f.request())
	require.NoError(t, err)
	assert.NotNil(t, fb)
	assert.Len(t, f.feedback.saved, 1)
	assert.Len(t, f.notifier.sent, 1)
}

func TestSubmitFeedbackSkipsMailWithoutRecipient(t *testing.T) {
	f := newFeedbackFixture()
	req := f.request()
	req.StudentID = uuid.NewString()

	_, err := f.service(SenderConfig{}).SubmitFeedback(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, f.notifier.sent)
	assert.Equal(t, 0, f.students.marked)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.SubmitFeedbackRequest)
		message string
	}{
		{"no student", func(r *dto.SubmitFeedbackRequest) { r.StudentID = "" }, "Missing required fields"},
		{"no course", func(r *dto.SubmitFeedbackRequest) { r.CourseID = " " }, "Missing required fields"},
		{"no responses", func(r *dto.SubmitFeedbackRequest) { r.Responses = nil }, "Missing required fields"},
		{"bad student id", func(r *dto.SubmitFeedbackRequest) { r.StudentID = "abc" }, "studentId is not a valid id"},
		{"bad answer", func(r *dto.SubmitFeedbackRequest) { r.Responses[1].Answer = "Superb" }, "responses[1].answer must be one of Excellent, Good, Average, Poor, Very Poor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFeedbackFixture()
			req := f.request()
			tt.mutate(&req)

			_, err := f.service(SenderConfig{}).SubmitFeedback(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
			assert.Empty(t, f.feedback.saved)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestAnalyzeFeedback(t *testing.T) {
	f := newFeedbackFixture()
	svc := f.service(SenderConfig{})
	ctx := context.Background()

	_, err := svc.AnalyzeFeedback(ctx, f.courseID, "")
	assert.ErrorIs(t, err, apperrors.ErrNoFeedbackYet)

	for _, faculty := range []string{"Dr. Rao", "Dr. Rao", "Dr. Iyer"} {
		req := f.request()
		req.FacultyName = faculty
		_, err := svc.SubmitFeedback(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.AnalyzeFeedback(ctx, f.courseID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalResponses)
	assert.Equal(t, AllFaculty, all.FacultyName)

	rao, err := svc.AnalyzeFeedback(ctx, f.courseID, "Dr. Rao")
	require.NoError(t, err)
	assert.Equal(t, 2, rao.TotalResponses)
	assert.Equal(t, "Dr. Rao", rao.FacultyName)
	assert.Equal(t, dto.RatingCounts{Excellent: 2}, rao.Summary["Clarity"])

	_, err = svc.AnalyzeFeedback(ctx, f.courseID, "Dr. Nobody")
	assert.ErrorIs(t, err, apperrors.ErrNoFeedbackYet)
}

func TestExportAnalysis(t *testing.T) {
	f := newFeedbackFixture()
	svc := f.service(SenderConfig{})
	ctx := context.Background()

	var buf bytes.Buffer
	assert.ErrorIs(t, svc.ExportAnalysis(ctx, f.courseID, "", &buf), apperrors.ErrNoFeedbackYet)

	_, err := svc.SubmitFeedback(ctx, f.request())
	require.NoError(t, err)

	require.NoError(t, svc.ExportAnalysis(ctx, f.courseID, "", &buf))
	assert.Contains(t, buf.String(), "Course,Algorithms\n")
	assert.Contains(t, buf.String(), "Faculty,All Faculty\n")
	assert.Contains(t, buf.String(), "Clarity,1,0,0,0,0,5.00\n")
}
