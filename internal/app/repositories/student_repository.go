package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/dberrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
)

var studentColumns = []string{"id", "name", "rollno", "email", "password", "created_at"}

// StudentRepository handles student and enrollment database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db, sb: psql}
}

// Create inserts a new student. The ID is generated when unset.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("students").
		Columns("id", "name", "rollno", "email", "password").
		Values(student.ID, student.Name, student.RollNo, student.Email, student.Password).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.CreatedAt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrStudentExists
		}
		logger.Error().Err(err).Str("rollno", student.RollNo).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	student.EnrolledCourses = []models.Enrollment{}
	return nil
}

// GetByID retrieves a student with enrollments, each joined with its course when it still exists
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := r.getOne(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if student.EnrolledCourses, err = r.listEnrollments(ctx, student.ID); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByRollNo retrieves a student by roll number, without enrollments
func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"rollno": rollNo})
}

// GetByEmailOrRollNo retrieves any student holding either identifier
func (r *StudentRepository) GetByEmailOrRollNo(ctx context.Context, email, rollNo string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Or{squirrel.Eq{"email": email}, squirrel.Eq{"rollno": rollNo}})
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(where).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{EnrolledCourses: []models.Enrollment{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name, &s.RollNo, &s.Email, &s.Password, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) listEnrollments(ctx context.Context, studentID uuid.UUID) ([]models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"sc.course_id", "sc.status",
		"c.id", "c.program", "c.dept", "c.year", "c.sem", "c.course_code", "c.course_name",
		"c.course_type", "c.faculty", "c.created_at",
	).
		From("student_courses sc").
		LeftJoin("courses c ON c.id = sc.course_id").
		Where(squirrel.Eq{"sc.student_id": studentID}).
		OrderBy("sc.position ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.Enrollment{}
	for rows.Next() {
		var (
			e                                     models.Enrollment
			courseID                              *uuid.UUID
			program, dept, code, name, courseType *string
			year, sem                             *int
			faculty                               []string
			createdAt                             *time.Time
		)
		if err := rows.Scan(&e.CourseID, &e.Status, &courseID, &program, &dept, &year, &sem, &code, &name,
			&courseType, &faculty, &createdAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if courseID != nil {
			e.Course = &models.Course{
				ID:         *courseID,
				Program:    models.Program(*program),
				Dept:       models.Department(*dept),
				Year:       *year,
				Sem:        *sem,
				CourseCode: *code,
				CourseName: *name,
				CourseType: models.CourseType(*courseType),
				Faculty:    faculty,
				CreatedAt:  *createdAt,
			}
			if e.Course.Faculty == nil {
				e.Course.Faculty = []string{}
			}
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrollment rows")
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}

// Enroll appends an enrollment with status "enrolled". It reports false when the pair
// already exists; the primary key makes the check and the insert a single statement.
func (r *StudentRepository) Enroll(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	sql, args, err := r.sb.Insert("student_courses").
		Columns("student_id", "course_id", "status").
		Values(studentID, courseID, models.StatusEnrolled).
		Suffix("ON CONFLICT (student_id, course_id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enroll SQL")
		return false, fmt.Errorf("failed to build enroll query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Str("courseID", courseID.String()).
			Msg("Error executing enroll query")
		return false, fmt.Errorf("error enrolling student: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// MarkFeedbackGiven moves an enrollment to "feedback_given". It reports false when the
// student is not enrolled in the course. The status never moves back.
func (r *StudentRepository) MarkFeedbackGiven(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	sql, args, err := r.sb.Update("student_courses").
		Set("status", models.StatusFeedbackGiven).
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark feedback SQL")
		return false, fmt.Errorf("failed to build mark feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Str("courseID", courseID.String()).
			Msg("Error executing mark feedback query")
		return false, fmt.Errorf("error marking feedback given: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
