package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/filestorage"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

type stubFeedbackService struct {
	submitted []dto.SubmitFeedbackRequest
	analysis  *dto.FeedbackAnalysisResponse
	err       error
}

func (s *stubFeedbackService) SubmitFeedback(_ context.Context, req dto.SubmitFeedbackRequest) (*models.FeedbackResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.submitted = append(s.submitted, req)
	return &models.FeedbackResponse{ID: uuid.New(), FacultyName: req.FacultyName}, nil
}

func (s *stubFeedbackService) AnalyzeFeedback(_ context.Context, _ uuid.UUID, _ string) (*dto.FeedbackAnalysisResponse, error) {
	return s.analysis, s.err
}

func (s *stubFeedbackService) ExportAnalysis(_ context.Context, _ uuid.UUID, faculty string, w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, "Course,Algorithms\nFaculty,"+faculty+"\n")
	return err
}

type stubAuthService struct {
	services.AuthService
	err error
}

func (s *stubAuthService) RegisterAdmin(_ context.Context, _ dto.AdminRegisterRequest) error {
	return s.err
}

type memoryCourses struct {
	services.CourseStore
	created   []*models.Course
	createErr error
}

func (m *memoryCourses) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, c := range m.created {
		if c.CourseCode == code {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *memoryCourses) Create(_ context.Context, c *models.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = uuid.New()
	m.created = append(m.created, c)
	return nil
}

// withUser stands in for JWTAuth
func withUser(id uuid.UUID, role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id.String())
		c.Set(middleware.ContextRoleType, string(role))
		c.Next()
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestGetAnalysisWithoutFeedback(t *testing.T) {
	fc := NewFeedbackController(&stubFeedbackService{err: apperrors.ErrNoFeedbackYet})
	r := gin.New()
	r.GET("/feedback/analysis/:courseId", fc.GetAnalysis)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/analysis/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No feedback yet"}`, w.Body.String())
}

func TestGetAnalysisInvalidCourseID(t *testing.T) {
	fc := NewFeedbackController(&stubFeedbackService{})
	r := gin.New()
	r.GET("/feedback/analysis/:courseId", fc.GetAnalysis)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/analysis/not-an-id", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Invalid course ID", resp.Message)
}

func TestExportAnalysis(t *testing.T) {
	fc := NewFeedbackController(&stubFeedbackService{})
	r := gin.New()
	r.GET("/feedback/analysis/:courseId/export", fc.ExportAnalysis)

	courseID := uuid.New()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/analysis/"+courseID.String()+"/export?faculty=Dr.+Rao", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="feedback-`+courseID.String()+`-Dr__Rao.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Course,Algorithms\nFaculty,Dr. Rao\n", w.Body.String())
}

func TestSubmitFeedbackOwnership(t *testing.T) {
	self := uuid.New()
	body := `{"studentId":"%s","courseId":"` + uuid.NewString() + `","facultyName":"Dr. Rao","responses":[{"questionText":"Clarity","answer":"Good"}]}`

	tests := []struct {
		name      string
		role      models.RoleType
		studentID string
		status    int
	}{
		{"own record", models.RoleStudent, self.String(), http.StatusCreated},
		{"other student", models.RoleStudent, uuid.NewString(), http.StatusForbidden},
		{"admin for anyone", models.RoleAdmin, uuid.NewString(), http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubFeedbackService{}
			r := gin.New()
			r.POST("/feedback", withUser(self, tt.role), NewFeedbackController(svc).SubmitFeedback)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(strings.Replace(body, "%s", tt.studentID, 1)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusCreated {
				var resp dto.FeedbackMessageResponse
				decode(t, w, &resp)
				assert.Equal(t, "Feedback saved successfully", resp.Message)
				assert.Len(t, svc.submitted, 1)
			} else {
				assert.Empty(t, svc.submitted)
			}
		})
	}
}

func TestRegisterAdminReportsServiceMessage(t *testing.T) {
	ac := NewAuthController(&stubAuthService{err: &apperrors.CustomError{Err: apperrors.ErrInvalidEmail, Message: "Email must end with @nec.edu.in"}})
	r := gin.New()
	r.POST("/admin/register", ac.RegisterAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(`{"name":"Office","email":"office@gmail.com","password":"admin#123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Email must end with @nec.edu.in", resp.Message)
}

func TestRegisterAdminRejectsMalformedBody(t *testing.T) {
	ac := NewAuthController(&stubAuthService{})
	r := gin.New()
	r.POST("/admin/register", ac.RegisterAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartUpload(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-coursebatch", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadCourseBatch(t *testing.T) {
	storageDir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(storageDir)
	require.NoError(t, err)

	courses := &memoryCourses{}
	uc := NewUploadController(services.NewCourseImportService(courses, zerolog.Nop()), storage, 1<<20, zerolog.Nop())
	r := gin.New()
	r.POST("/upload-coursebatch", uc.UploadCourseBatch)

	csvBody := "Program,Dept,Year,Sem,CourseCode,CourseName,CourseType,Faculty1,Faculty2,Faculty3\n" +
		"BE,CSE,2,3,CS3401,Algorithms,theory,Dr. Rao,,\n" +
		"BE,CSE,2,3,CS3401,Algorithms Again,theory,Dr. Rao,,\n" +
		"BE,CSE,2,3,,No Code,theory,Dr. Rao,,\n"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "csvFile", "batch.csv", csvBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CourseBatchResponse
	decode(t, w, &resp)
	assert.Equal(t, services.BatchUploadedMessage, resp.Message)
	require.Len(t, resp.Accepted, 1)
	require.Len(t, resp.Rejected, 2)
	assert.Equal(t, services.ReasonCourseExists, resp.Rejected[0].Reason)
	assert.Equal(t, services.ReasonMissingFields, resp.Rejected[1].Reason)
	assert.Len(t, courses.created, 1)

	var raw struct {
		Success []map[string]interface{} `json:"success"`
		Error   []map[string]interface{} `json:"error"`
	}
	decode(t, w, &raw)
	require.Len(t, raw.Success, 1)
	for _, key := range []string{"program", "dept", "year", "sem", "courseCode", "courseName", "courseType", "faculty"} {
		assert.Contains(t, raw.Success[0], key)
		assert.Contains(t, raw.Error[0], key)
	}
	assert.NotContains(t, raw.Success[0], "CourseCode")
	assert.Equal(t, "CS3401", raw.Success[0]["courseCode"])
	assert.Equal(t, courses.created[0].ID.String(), raw.Error[0]["_id"])
	assert.Equal(t, services.ReasonCourseExists, raw.Error[0]["message"])

	archived, err := os.ReadDir(filepath.Join(storageDir, BatchArchiveDir))
	require.NoError(t, err)
	assert.Len(t, archived, 1)
}

func TestUploadCourseBatchStoreFailureRemovesArchive(t *testing.T) {
	storageDir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(storageDir)
	require.NoError(t, err)

	courses := &memoryCourses{createErr: errors.New("connection reset")}
	uc := NewUploadController(services.NewCourseImportService(courses, zerolog.Nop()), storage, 1<<20, zerolog.Nop())
	r := gin.New()
	r.POST("/upload-coursebatch", uc.UploadCourseBatch)

	csvBody := "Program,Dept,Year,Sem,CourseCode,CourseName,CourseType,Faculty1,Faculty2,Faculty3\n" +
		"BE,CSE,2,3,CS3401,Algorithms,theory,Dr. Rao,,\n"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "csvFile", "batch.csv", csvBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	archived, err := os.ReadDir(filepath.Join(storageDir, BatchArchiveDir))
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestUploadCourseBatchWithoutFile(t *testing.T) {
	uc := NewUploadController(services.NewCourseImportService(&memoryCourses{}, zerolog.Nop()), nil, 0, zerolog.Nop())
	r := gin.New()
	r.POST("/upload-coursebatch", uc.UploadCourseBatch)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "", "", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "No file uploaded", resp.Message)
}

func TestUploadCourseBatchTooLarge(t *testing.T) {
	uc := NewUploadController(services.NewCourseImportService(&memoryCourses{}, zerolog.Nop()), nil, 10, zerolog.Nop())
	r := gin.New()
	r.POST("/upload-coursebatch", uc.UploadCourseBatch)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "csvFile", "batch.csv", strings.Repeat("x", 64)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
