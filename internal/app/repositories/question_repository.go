package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
)

var questionColumns = []string{"id", "course_type", "question", "created_at"}

// QuestionRepository handles feedback question database operations
type QuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db, sb: psql}
}

// Create inserts a new question. The ID is generated when unset.
func (r *QuestionRepository) Create(ctx context.Context, q *models.FeedbackQuestion) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("feedback_questions").
		Columns("id", "course_type", "question").
		Values(q.ID, q.CourseType, q.Question).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create question SQL")
		return fmt.Errorf("failed to build create question query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&q.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create question query")
		return fmt.Errorf("error creating question: %w", err)
	}
	return nil
}

// List retrieves questions in creation order; an empty course type lists all of them
func (r *QuestionRepository) List(ctx context.Context, courseType models.CourseType) ([]*models.FeedbackQuestion, error) {
	q := r.sb.Select(questionColumns...).From("feedback_questions").OrderBy("created_at ASC", "id ASC")
	if courseType != "" {
		q = q.Where(squirrel.Eq{"course_type": courseType})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list questions SQL")
		return nil, fmt.Errorf("failed to build list questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list questions query")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.FeedbackQuestion{}
	for rows.Next() {
		fq := &models.FeedbackQuestion{}
		if err := rows.Scan(&fq.ID, &fq.CourseType, &fq.Question, &fq.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning question row")
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, fq)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating question rows")
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}
	return questions, nil
}

// UpdateText replaces the text of a question and returns the stored record
func (r *QuestionRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (*models.FeedbackQuestion, error) {
	sql, args, err := r.sb.Update("feedback_questions").
		Set("question", text).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, course_type, question, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update question SQL")
		return nil, fmt.Errorf("failed to build update question query: %w", err)
	}

	fq := &models.FeedbackQuestion{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&fq.ID, &fq.CourseType, &fq.Question, &fq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		logger.Error().Err(err).Str("questionID", id.String()).Msg("Error executing update question query")
		return nil, fmt.Errorf("error updating question: %w", err)
	}
	return fq, nil
}

// Delete removes a question. Submitted feedback keeps its question text snapshot.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("feedback_questions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete question SQL")
		return fmt.Errorf("failed to build delete question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("questionID", id.String()).Msg("Error executing delete question query")
		return fmt.Errorf("error deleting question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// CountByCourseType reports how many questions exist for a course type
func (r *QuestionRepository) CountByCourseType(ctx context.Context, courseType models.CourseType) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("feedback_questions").
		Where(squirrel.Eq{"course_type": courseType}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count questions query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting questions")
		return 0, fmt.Errorf("error counting questions: %w", err)
	}
	return count, nil
}
