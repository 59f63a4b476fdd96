package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/validation"
)

// CourseService manages the course catalog
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListCourses(ctx context.Context, query dto.CourseListQuery) ([]*models.Course, error)
	GetFaculties(ctx context.Context, id uuid.UUID) ([]string, error)
}

type courseServiceImpl struct {
	courses CourseStore
	logger  zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courses: courses,
		logger:  logger,
	}
}

// courseFromRequest validates the request and builds a normalized course
func courseFromRequest(req dto.CourseRequest) (*models.Course, error) {
	courseType, ok := models.ParseCourseType(req.CourseType)
	if !ok {
		return nil, apperrors.NewValidationError("courseType must be one of theory, practical, integrated")
	}
	if !req.Program.IsValid() {
		return nil, apperrors.NewValidationError("program must be one of BE, BTECH")
	}
	if !req.Dept.IsValid() {
		return nil, apperrors.NewValidationError("dept is not a known department")
	}
	if req.Year < models.MinYear || req.Year > models.MaxYear {
		return nil, apperrors.NewValidationError("year must be between 1 and 4")
	}
	if req.Sem < models.MinSemester || req.Sem > models.MaxSemester {
		return nil, apperrors.NewValidationError("sem must be between 1 and 8")
	}

	code := strings.TrimSpace(req.CourseCode)
	name := strings.TrimSpace(req.CourseName)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError("courseCode and courseName are required")
	}
	if !validation.IsCourseCode(code) {
		return nil, apperrors.NewValidationError("courseCode may only contain letters, digits and dashes")
	}

	faculty := make([]string, 0, len(req.Faculty))
	for _, f := range req.Faculty {
		if f = strings.TrimSpace(f); f != "" {
			faculty = append(faculty, f)
		}
	}
	if len(faculty) == 0 {
		return nil, apperrors.NewValidationError("At least one faculty member is required")
	}

	return &models.Course{
		Program:    req.Program,
		Dept:       req.Dept,
		Year:       req.Year,
		Sem:        req.Sem,
		CourseCode: code,
		CourseName: name,
		CourseType: courseType,
		Faculty:    faculty,
	}, nil
}

// CreateCourse adds a course to the catalog
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Str("courseID", course.ID.String()).Str("courseCode", course.CourseCode).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces the fields of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id uuid.UUID, req dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	course.ID = id
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, notFound(err, apperrors.ErrCourseNotFound, "Course not found")
	}
	return course, nil
}

// DeleteCourse removes a course; feedback about it is kept
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrCourseNotFound, "Course not found")
	}
	s.logger.Info().Str("courseID", id.String()).Msg("Course deleted")
	return nil
}

// GetCourse retrieves one course
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrCourseNotFound, "Course not found")
	}
	return course, nil
}

// ListCourses lists courses matching the optional filters
func (s *courseServiceImpl) ListCourses(ctx context.Context, query dto.CourseListQuery) ([]*models.Course, error) {
	filter := models.CourseFilter{
		Program: models.Program(strings.ToUpper(strings.TrimSpace(query.Program))),
		Dept:    models.Department(strings.ToUpper(strings.TrimSpace(query.Dept))),
		Year:    query.Year,
		Sem:     query.Sem,
	}
	if query.CourseType != "" {
		courseType, ok := models.ParseCourseType(query.CourseType)
		if !ok {
			return nil, apperrors.NewValidationError("courseType must be one of theory, practical, integrated")
		}
		filter.CourseType = courseType
	}
	return s.courses.List(ctx, filter)
}

// GetFaculties returns the faculty names of a course
func (s *courseServiceImpl) GetFaculties(ctx context.Context, id uuid.UUID) ([]string, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return course.Faculty, nil
}

// notFound attaches a message to store not-found errors and passes others through
func notFound(err, sentinel error, message string) error {
	if apperrors.Is(err, sentinel) {
		return apperrors.NewResourceNotFoundError(err, message)
	}
	return err
}
