package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/tabular"
)

const batchHeader = "Program,Dept,Year,Sem,CourseCode,CourseName,CourseType,Faculty1,Faculty2,Faculty3\n"

func importCSV(t *testing.T, store *fakeCourses, body string) (*fakeCourses, error) {
	t.Helper()
	svc := NewCourseImportService(store, zerolog.Nop())
	_, err := svc.ImportCSV(context.Background(), strings.NewReader(body))
	return store, err
}

func TestImportCSVAcceptsAndNormalizesRows(t *testing.T) {
	store := &fakeCourses{}
	svc := NewCourseImportService(store, zerolog.Nop())

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(batchHeader+
		"BE,CSE,2,3,CS3401,Algorithms,Theory,Dr. Rao,,Dr. Iyer\n"))
	require.NoError(t, err)

	assert.Equal(t, BatchUploadedMessage, result.Message)
	require.Len(t, result.Accepted, 1)
	assert.Empty(t, result.Rejected)

	row := result.Accepted[0]
	assert.Equal(t, 2, row.Year)
	assert.Equal(t, 3, row.Sem)
	assert.Equal(t, "theory", row.CourseType)
	assert.Equal(t, []string{"Dr. Rao", "Dr. Iyer"}, row.Faculty)
	assert.Empty(t, row.ID)

	require.Len(t, store.courses, 1)
	assert.Equal(t, models.CourseTypeTheory, store.courses[0].CourseType)
}

func TestImportCSVFirstDuplicateWins(t *testing.T) {
	store := &fakeCourses{}
	svc := NewCourseImportService(store, zerolog.Nop())

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(batchHeader+
		"BE,CSE,2,3,CS3401,Algorithms,theory,Dr. Rao,,\n"+
		"BTECH,IT,1,1,CS3401,Other Name,practical,Dr. Sen,,\n"))
	require.NoError(t, err)

	require.Len(t, result.Accepted, 1)
	require.Len(t, result.Rejected, 1)
	rejected := result.Rejected[0]
	assert.Equal(t, ReasonCourseExists, rejected.Reason)
	assert.Equal(t, "Algorithms", rejected.CourseName)
	assert.Equal(t, store.courses[0].ID.String(), rejected.ID)
	assert.Len(t, store.courses, 1)
}

func TestImportCSVRejectsIncompleteAndInvalidRows(t *testing.T) {
	store := &fakeCourses{}
	svc := NewCourseImportService(store, zerolog.Nop())

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(batchHeader+
		"BE,CSE,,3,CS1,Missing Year,theory,Dr. A,,\n"+
		"BE,CSE,9,3,CS2,Bad Year,theory,Dr. A,,\n"+
		"BE,CSE,2,3,CS3,Bad Type,seminar,Dr. A,,\n"+
		"BE,CSE,2,3,CS 5,Spaced Code,theory,Dr. A,,\n"+
		"BE,CSE,1,1,CS10,No Faculty,theory,,,\n"+
		"BE,CSE,2,3,CS4,Good,integrated,Dr. A,,\n"))
	require.NoError(t, err)

	require.Len(t, result.Rejected, 5)
	assert.Equal(t, ReasonMissingFields, result.Rejected[0].Reason)
	assert.Equal(t, "", result.Rejected[0].Year)
	assert.Equal(t, ReasonInvalidValues, result.Rejected[1].Reason)
	assert.Equal(t, "9", result.Rejected[1].Year)
	assert.Equal(t, ReasonInvalidValues, result.Rejected[2].Reason)
	assert.Equal(t, ReasonInvalidValues, result.Rejected[3].Reason)
	assert.Equal(t, ReasonInvalidValues, result.Rejected[4].Reason)
	assert.Equal(t, "CS10", result.Rejected[4].CourseCode)
	assert.Empty(t, result.Rejected[4].Faculty)

	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "CS4", result.Accepted[0].CourseCode)
}

func TestImportCSVAbortsOnStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := importCSV(t, &fakeCourses{createErr: boom}, batchHeader+"BE,CSE,2,3,CS3401,Algorithms,theory,Dr. Rao,,\n")
	assert.ErrorIs(t, err, boom)
}

func TestImportCSVRejectsUnreadableInput(t *testing.T) {
	store, err := importCSV(t, &fakeCourses{}, batchHeader+"BE,CSE,2,3,CS1,Ok,theory,Dr. A,,\n"+"BE,CSE,2,3,CS2,Bad \xff,theory,Dr. A,,\n")
	require.Error(t, err)
	var parseErr *tabular.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Invalid CSV file", apperrors.Message(err, ""))
	assert.Len(t, store.courses, 1)
}

func TestImportCSVEmptyBatch(t *testing.T) {
	svc := NewCourseImportService(&fakeCourses{}, zerolog.Nop())
	result, err := svc.ImportCSV(context.Background(), strings.NewReader(batchHeader))
	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Empty(t, result.Rejected)
}
