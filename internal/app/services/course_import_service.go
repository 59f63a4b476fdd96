package services

import (
	"context"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/tabular"
	"github.com/necfeedback/coursefeedback/internal/pkg/validation"
)

// Batch column headers
const (
	ColProgram    = "Program"
	ColDept       = "Dept"
	ColYear       = "Year"
	ColSem        = "Sem"
	ColCourseCode = "CourseCode"
	ColCourseName = "CourseName"
	ColCourseType = "CourseType"
)

// FacultyColumns are read in order; empty cells are dropped
var FacultyColumns = []string{"Faculty1", "Faculty2", "Faculty3"}

var requiredColumns = []string{ColProgram, ColDept, ColYear, ColSem, ColCourseCode, ColCourseName, ColCourseType}

// Rejection reasons reported per row
const (
	ReasonMissingFields = "Missing required fields"
	ReasonCourseExists  = "Course already exists"
	ReasonInvalidValues = "Invalid field values"
)

// BatchUploadedMessage is the message of every completed batch
const BatchUploadedMessage = "Course batch uploaded successfully"

// CourseImportService ingests course batches
type CourseImportService interface {
	ImportCourses(ctx context.Context, rows iter.Seq2[tabular.Row, error]) (*dto.CourseBatchResponse, error)
	ImportCSV(ctx context.Context, r io.Reader) (*dto.CourseBatchResponse, error)
}

type courseImportServiceImpl struct {
	courses CourseStore
	logger  zerolog.Logger
}

// NewCourseImportService creates a new course import service instance
func NewCourseImportService(courses CourseStore, logger zerolog.Logger) CourseImportService {
	return &courseImportServiceImpl{
		courses: courses,
		logger:  logger,
	}
}

// ImportCSV parses r as a header-first CSV document and imports its rows
func (s *courseImportServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (*dto.CourseBatchResponse, error) {
	return s.ImportCourses(ctx, tabular.Rows(r))
}

// ImportCourses processes rows strictly in order, so a row sees every course inserted by
// the rows before it. Rejected rows are part of a successful result; only unreadable input
// and store failures end the batch early, keeping the rows persisted so far.
func (s *courseImportServiceImpl) ImportCourses(ctx context.Context, rows iter.Seq2[tabular.Row, error]) (*dto.CourseBatchResponse, error) {
	result := &dto.CourseBatchResponse{
		Message:  BatchUploadedMessage,
		Accepted: []dto.CourseRowData{},
		Rejected: []dto.RejectedCourseRow{},
	}

	line := 0
	for row, err := range rows {
		if err != nil {
			s.logger.Warn().Err(err).Int("accepted", len(result.Accepted)).Msg("Course batch is unreadable")
			return nil, apperrors.NewBadRequestError(err, "Invalid CSV file")
		}
		line++

		if err := s.importRow(ctx, row, result); err != nil {
			s.logger.Error().Err(err).Int("row", line).Int("accepted", len(result.Accepted)).
				Msg("Course batch aborted")
			return nil, err
		}
	}

	s.logger.Info().
		Int("rows", line).
		Int("accepted", len(result.Accepted)).
		Int("rejected", len(result.Rejected)).
		Msg("Course batch imported")
	return result, nil
}

func (s *courseImportServiceImpl) importRow(ctx context.Context, row tabular.Row, result *dto.CourseBatchResponse) error {
	faculty := make([]string, 0, len(FacultyColumns))
	for _, col := range FacultyColumns {
		if row.Has(col) {
			faculty = append(faculty, row.Get(col))
		}
	}

	given := dto.CourseRowData{
		Program:    row.Get(ColProgram),
		Dept:       row.Get(ColDept),
		Year:       row.Get(ColYear),
		Sem:        row.Get(ColSem),
		CourseCode: row.Get(ColCourseCode),
		CourseName: row.Get(ColCourseName),
		CourseType: row.Get(ColCourseType),
		Faculty:    faculty,
	}

	for _, col := range requiredColumns {
		if !row.Has(col) {
			result.Rejected = append(result.Rejected, dto.RejectedCourseRow{CourseRowData: given, Reason: ReasonMissingFields})
			return nil
		}
	}

	existing, err := s.courses.GetByCode(ctx, given.CourseCode)
	switch {
	case err == nil:
		result.Rejected = append(result.Rejected, dto.RejectedCourseRow{CourseRowData: storedRowData(existing), Reason: ReasonCourseExists})
		return nil
	case !apperrors.Is(err, apperrors.ErrCourseNotFound):
		return err
	}

	course, ok := normalizeCourseRow(row, faculty)
	if !ok {
		result.Rejected = append(result.Rejected, dto.RejectedCourseRow{CourseRowData: given, Reason: ReasonInvalidValues})
		return nil
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return err
	}

	result.Accepted = append(result.Accepted, dto.CourseRowData{
		Program:    string(course.Program),
		Dept:       string(course.Dept),
		Year:       course.Year,
		Sem:        course.Sem,
		CourseCode: course.CourseCode,
		CourseName: course.CourseName,
		CourseType: string(course.CourseType),
		Faculty:    course.Faculty,
	})
	return nil
}

// normalizeCourseRow coerces Year and Sem to integers and lower-cases the course type.
// It reports false when a value falls outside what the catalog accepts, including a row
// without any faculty.
func normalizeCourseRow(row tabular.Row, faculty []string) (*models.Course, bool) {
	year, err := strconv.Atoi(row.Get(ColYear))
	if err != nil || year < models.MinYear || year > models.MaxYear {
		return nil, false
	}
	sem, err := strconv.Atoi(row.Get(ColSem))
	if err != nil || sem < models.MinSemester || sem > models.MaxSemester {
		return nil, false
	}

	course := &models.Course{
		Program:    models.Program(row.Get(ColProgram)),
		Dept:       models.Department(row.Get(ColDept)),
		Year:       year,
		Sem:        sem,
		CourseCode: row.Get(ColCourseCode),
		CourseName: row.Get(ColCourseName),
		CourseType: models.CourseType(strings.ToLower(row.Get(ColCourseType))),
		Faculty:    faculty,
	}
	if !course.Program.IsValid() || !course.Dept.IsValid() || !course.CourseType.IsValid() ||
		!validation.IsCourseCode(course.CourseCode) || len(course.Faculty) == 0 {
		return nil, false
	}
	return course, true
}

func storedRowData(c *models.Course) dto.CourseRowData {
	return dto.CourseRowData{
		ID:         c.ID.String(),
		Program:    string(c.Program),
		Dept:       string(c.Dept),
		Year:       c.Year,
		Sem:        c.Sem,
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		CourseType: string(c.CourseType),
		Faculty:    c.Faculty,
	}
}
