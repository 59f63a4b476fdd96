package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/email"
)

// SenderConfig lists the configured sender candidates, highest precedence first.
// The first admin account sits between AdminEmail and AccountUser.
type SenderConfig struct {
	Override    string
	AdminEmail  string
	AccountUser string
}

// FeedbackService handles feedback submission and analysis
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error)
	AnalyzeFeedback(ctx context.Context, courseID uuid.UUID, facultyName string) (*dto.FeedbackAnalysisResponse, error)
	ExportAnalysis(ctx context.Context, courseID uuid.UUID, facultyName string, w io.Writer) error
}

type feedbackServiceImpl struct {
	feedback FeedbackStore
	students StudentStore
	admins   AdminStore
	notifier email.Notifier
	sender   SenderConfig
	logger   zerolog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(
	feedback FeedbackStore,
	students StudentStore,
	admins AdminStore,
	notifier email.Notifier,
	sender SenderConfig,
	logger zerolog.Logger,
) FeedbackService {
	return &feedbackServiceImpl{
		feedback: feedback,
		students: students,
		admins:   admins,
		notifier: notifier,
		sender:   sender,
		logger:   logger,
	}
}

// buildFeedback validates a submission. The number of answers is not checked against the
// questionnaire; every answer must still use a scale label.
func buildFeedback(req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error) {
	if strings.TrimSpace(req.StudentID) == "" || strings.TrimSpace(req.CourseID) == "" || len(req.Responses) == 0 {
		return nil, apperrors.NewValidationError("Missing required fields")
	}
	studentID, err := uuid.Parse(strings.TrimSpace(req.StudentID))
	if err != nil {
		return nil, apperrors.NewValidationError("studentId is not a valid id")
	}
	courseID, err := uuid.Parse(strings.TrimSpace(req.CourseID))
	if err != nil {
		return nil, apperrors.NewValidationError("courseId is not a valid id")
	}

	fb := &models.FeedbackResponse{
		StudentID:   studentID,
		CourseID:    courseID,
		CourseName:  req.CourseName,
		CourseType:  req.CourseType,
		FacultyName: req.FacultyName,
		Responses:   make([]models.ResponseItem, 0, len(req.Responses)),
	}
	for i, r := range req.Responses {
		answer := models.RatingCategory(r.Answer)
		if !answer.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("responses[%d].answer must be one of Excellent, Good, Average, Poor, Very Poor", i))
		}
		item := models.ResponseItem{QuestionText: r.QuestionText, Answer: answer}
		if r.QuestionID != "" {
			qid, err := uuid.Parse(r.QuestionID)
			if err != nil {
				return nil, apperrors.NewValidationError(fmt.Sprintf("responses[%d].questionId is not a valid id", i))
			}
			item.QuestionID = &qid
		}
		fb.Responses = append(fb.Responses, item)
	}
	return fb, nil
}

// SubmitFeedback stores a response, marks the enrollment as rated and mails a confirmation.
// Once the response is stored, neither the enrollment update nor the mail can fail the call.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error) {
	fb, err := buildFeedback(req)
	if err != nil {
		return nil, err
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	log := s.logger.With().Str("feedbackID", fb.ID.String()).Str("studentID", fb.StudentID.String()).Logger()
	log.Info().Str("courseID", fb.CourseID.String()).Msg("Feedback saved")

	if marked, err := s.students.MarkFeedbackGiven(ctx, fb.StudentID, fb.CourseID); err != nil {
		log.Error().Err(err).Msg("Failed to update enrollment status")
	} else if !marked {
		log.Warn().Str("courseID", fb.CourseID.String()).Msg("Feedback for a course the student is not enrolled in")
	}

	s.notify(ctx, log, req, fb)
	return fb, nil
}

func (s *feedbackServiceImpl) notify(ctx context.Context, log zerolog.Logger, req dto.SubmitFeedbackRequest, fb *models.FeedbackResponse) {
	to, name := strings.TrimSpace(req.StudentEmail), strings.TrimSpace(req.StudentName)
	if to == "" {
		student, err := s.students.GetByID(ctx, fb.StudentID)
		if err != nil && !apperrors.Is(err, apperrors.ErrStudentNotFound) {
			log.Error().Err(err).Msg("Failed to look up student email")
		}
		if student != nil {
			to = student.Email
			if name == "" {
				name = student.Name
			}
		}
	}
	if to == "" {
		log.Warn().Msg("Student email not found, confirmation not sent")
		return
	}

	err := s.notifier.SendFeedbackConfirmation(ctx, email.FeedbackConfirmation{
		To:          to,
		From:        s.resolveSender(ctx, log),
		StudentName: name,
		CourseName:  fb.CourseName,
		FacultyName: fb.FacultyName,
	})
	if err != nil {
		log.Error().Err(err).Str("toEmail", to).Msg("Failed to send confirmation mail")
		return
	}
	log.Info().Str("toEmail", to).Msg("Feedback confirmation mail sent")
}

// resolveSender picks the from address: override, configured admin address, first admin
// account, then the mail account itself.
func (s *feedbackServiceImpl) resolveSender(ctx context.Context, log zerolog.Logger) string {
	if s.sender.Override != "" {
		return s.sender.Override
	}
	if s.sender.AdminEmail != "" {
		return s.sender.AdminEmail
	}
	admin, err := s.admins.GetFirst(ctx)
	switch {
	case err == nil && admin.Email != "":
		return admin.Email
	case err != nil && !apperrors.Is(err, apperrors.ErrAdminNotFound):
		log.Warn().Err(err).Msg("Failed to look up admin sender address")
	}
	return s.sender.AccountUser
}

func (s *feedbackServiceImpl) summarize(ctx context.Context, courseID uuid.UUID, facultyName string) (*FeedbackSummary, error) {
	responses, err := s.feedback.List(ctx, models.FeedbackFilter{CourseID: courseID, FacultyName: facultyName})
	if err != nil {
		return nil, err
	}
	return AggregateFeedback(responses)
}

// AnalyzeFeedback aggregates a course's feedback, optionally for one faculty member.
// It returns apperrors.ErrNoFeedbackYet when nothing matches.
func (s *feedbackServiceImpl) AnalyzeFeedback(ctx context.Context, courseID uuid.UUID, facultyName string) (*dto.FeedbackAnalysisResponse, error) {
	summary, err := s.summarize(ctx, courseID, facultyName)
	if err != nil {
		return nil, err
	}
	return summary.Analysis(facultyName), nil
}

// ExportAnalysis writes the aggregated feedback as CSV
func (s *feedbackServiceImpl) ExportAnalysis(ctx context.Context, courseID uuid.UUID, facultyName string, w io.Writer) error {
	summary, err := s.summarize(ctx, courseID, facultyName)
	if err != nil {
		return err
	}
	return summary.WriteCSV(w, facultyName)
}
