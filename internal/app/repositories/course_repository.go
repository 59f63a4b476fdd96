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

var courseColumns = []string{
	"id", "program", "dept", "year", "sem", "course_code", "course_name", "course_type", "faculty", "created_at",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: psql}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.Program, &c.Dept, &c.Year, &c.Sem, &c.CourseCode, &c.CourseName,
		&c.CourseType, &c.Faculty, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if c.Faculty == nil {
		c.Faculty = []string{}
	}
	return c, nil
}

// Create inserts a new course. The ID is generated when unset.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.Faculty == nil {
		course.Faculty = []string{}
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("id", "program", "dept", "year", "sem", "course_code", "course_name", "course_type", "faculty").
		Values(course.ID, course.Program, course.Dept, course.Year, course.Sem, course.CourseCode,
			course.CourseName, course.CourseType, course.Faculty).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt); err != nil {
		logger.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode retrieves the oldest course with the exact course code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"course_code": code})
}

func (r *CourseRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// List retrieves courses matching the filter, oldest first
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	conds := squirrel.Eq{}
	if filter.Program != "" {
		conds["program"] = filter.Program
	}
	if filter.Dept != "" {
		conds["dept"] = filter.Dept
	}
	if filter.Year != 0 {
		conds["year"] = filter.Year
	}
	if filter.Sem != 0 {
		conds["sem"] = filter.Sem
	}
	if filter.CourseType != "" {
		conds["course_type"] = filter.CourseType
	}
	if filter.CourseCode != "" {
		conds["course_code"] = filter.CourseCode
	}

	q := r.sb.Select(courseColumns...).From("courses").OrderBy("created_at ASC")
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Update overwrites the mutable fields of a course and refreshes it from the store
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	if course.Faculty == nil {
		course.Faculty = []string{}
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"program":     course.Program,
			"dept":        course.Dept,
			"year":        course.Year,
			"sem":         course.Sem,
			"course_code": course.CourseCode,
			"course_name": course.CourseName,
			"course_type": course.CourseType,
			"faculty":     course.Faculty,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", course.ID.String()).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course. Enrollments and feedback referencing it are left untouched.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
