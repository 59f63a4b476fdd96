package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/db"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
)

// FeedbackRepository handles feedback response database operations
type FeedbackRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(database *db.PostgresDB) *FeedbackRepository {
	return &FeedbackRepository{db: database, sb: psql}
}

// Create stores a response and its items as one record. The ID is generated when unset.
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.FeedbackResponse) error {
	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("feedback_responses").
			Columns("id", "student_id", "course_id", "course_name", "course_type", "faculty_name").
			Values(fb.ID, fb.StudentID, fb.CourseID, fb.CourseName, fb.CourseType, fb.FacultyName).
			Suffix("RETURNING created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create feedback query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&fb.CreatedAt); err != nil {
			logger.Error().Err(err).Str("courseID", fb.CourseID.String()).Msg("Error executing create feedback query")
			return fmt.Errorf("error creating feedback: %w", err)
		}

		if len(fb.Responses) == 0 {
			return nil
		}

		items := r.sb.Insert("feedback_response_items").
			Columns("feedback_id", "position", "question_id", "question_text", "answer")
		for i, item := range fb.Responses {
			items = items.Values(fb.ID, i, item.QuestionID, item.QuestionText, item.Answer)
		}
		sql, args, err = items.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create feedback items query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("feedbackID", fb.ID.String()).Msg("Error executing create feedback items query")
			return fmt.Errorf("error creating feedback items: %w", err)
		}
		return nil
	})
}

// List retrieves the responses of a course, optionally narrowed to one faculty name,
// in submission order with their items in answer order.
func (r *FeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter) ([]*models.FeedbackResponse, error) {
	conds := squirrel.Eq{"f.course_id": filter.CourseID}
	if filter.FacultyName != "" {
		conds["f.faculty_name"] = filter.FacultyName
	}

	sql, args, err := r.sb.Select(
		"f.id", "f.student_id", "f.course_id", "f.course_name", "f.course_type", "f.faculty_name", "f.created_at",
		"i.question_id", "i.question_text", "i.answer",
	).
		From("feedback_responses f").
		LeftJoin("feedback_response_items i ON i.feedback_id = f.id").
		Where(conds).
		OrderBy("f.created_at ASC", "f.id ASC", "i.position ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list feedback SQL")
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", filter.CourseID.String()).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	responses := []*models.FeedbackResponse{}
	var current *models.FeedbackResponse
	for rows.Next() {
		var (
			fb           models.FeedbackResponse
			questionID   *uuid.UUID
			questionText *string
			answer       *string
		)
		if err := rows.Scan(&fb.ID, &fb.StudentID, &fb.CourseID, &fb.CourseName, &fb.CourseType, &fb.FacultyName,
			&fb.CreatedAt, &questionID, &questionText, &answer); err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback row")
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}

		if current == nil || current.ID != fb.ID {
			fb.Responses = []models.ResponseItem{}
			current = &fb
			responses = append(responses, current)
		}
		if questionText != nil && answer != nil {
			current.Responses = append(current.Responses, models.ResponseItem{
				QuestionID:   questionID,
				QuestionText: *questionText,
				Answer:       models.RatingCategory(*answer),
			})
		}
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating feedback rows")
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}
	return responses, nil
}
