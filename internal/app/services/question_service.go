package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

// QuestionService manages the feedback questionnaire
type QuestionService interface {
	CreateQuestion(ctx context.Context, courseType, text string) (*models.FeedbackQuestion, error)
	ListQuestions(ctx context.Context, courseType string) ([]*models.FeedbackQuestion, error)
	UpdateQuestion(ctx context.Context, id uuid.UUID, text string) (*models.FeedbackQuestion, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

type questionServiceImpl struct {
	questions QuestionStore
	logger    zerolog.Logger
}

// NewQuestionService creates a new question service instance
func NewQuestionService(questions QuestionStore, logger zerolog.Logger) QuestionService {
	return &questionServiceImpl{
		questions: questions,
		logger:    logger,
	}
}

func parseCourseType(s string) (models.CourseType, error) {
	courseType, ok := models.ParseCourseType(s)
	if !ok {
		return "", apperrors.NewValidationError("courseType must be one of theory, practical, integrated")
	}
	return courseType, nil
}

// CreateQuestion adds a question to a course type's questionnaire
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, courseType, text string) (*models.FeedbackQuestion, error) {
	ct, err := parseCourseType(courseType)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("question is required")
	}

	q := &models.FeedbackQuestion{CourseType: ct, Question: text}
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	s.logger.Info().Str("questionID", q.ID.String()).Str("courseType", string(ct)).Msg("Question created")
	return q, nil
}

// ListQuestions lists the questions of a course type, or every question when courseType is empty
func (s *questionServiceImpl) ListQuestions(ctx context.Context, courseType string) ([]*models.FeedbackQuestion, error) {
	var ct models.CourseType
	if strings.TrimSpace(courseType) != "" {
		var err error
		if ct, err = parseCourseType(courseType); err != nil {
			return nil, err
		}
	}
	return s.questions.List(ctx, ct)
}

// UpdateQuestion replaces a question's text
func (s *questionServiceImpl) UpdateQuestion(ctx context.Context, id uuid.UUID, text string) (*models.FeedbackQuestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("question is required")
	}
	q, err := s.questions.UpdateText(ctx, id, text)
	if err != nil {
		return nil, notFound(err, apperrors.ErrQuestionNotFound, "Question not found")
	}
	return q, nil
}

// DeleteQuestion removes a question from its questionnaire
func (s *questionServiceImpl) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrQuestionNotFound, "Question not found")
	}
	return nil
}
