package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/email"
)

type fakeAdmins struct {
	admins []*models.Admin
	err    error
}

func (f *fakeAdmins) Create(_ context.Context, a *models.Admin) error {
	for _, existing := range f.admins {
		if existing.Email == a.Email {
			return apperrors.ErrAdminAlreadyExists
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	f.admins = append(f.admins, a)
	return nil
}

func (f *fakeAdmins) find(match func(*models.Admin) bool) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if match(a) {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	return f.find(func(a *models.Admin) bool { return a.Email == email })
}

func (f *fakeAdmins) GetByName(_ context.Context, name string) (*models.Admin, error) {
	return f.find(func(a *models.Admin) bool { return a.Name == name })
}

func (f *fakeAdmins) GetFirst(_ context.Context) (*models.Admin, error) {
	return f.find(func(*models.Admin) bool { return true })
}

type fakeStudents struct {
	students map[uuid.UUID]*models.Student
	markErr  error
	marked   int
}

func newFakeStudents(students ...*models.Student) *fakeStudents {
	f := &fakeStudents{students: make(map[uuid.UUID]*models.Student)}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudents) Create(_ context.Context, s *models.Student) error {
	for _, existing := range f.students {
		if existing.Email == s.Email || existing.RollNo == s.RollNo {
			return apperrors.ErrStudentExists
		}
	}
	s.ID = uuid.New()
	f.students[s.ID] = s
	return nil
}

func (f *fakeStudents) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudents) GetByRollNo(_ context.Context, rollNo string) (*models.Student, error) {
	for _, s := range f.students {
		if s.RollNo == rollNo {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudents) GetByEmailOrRollNo(_ context.Context, email, rollNo string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email || s.RollNo == rollNo {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudents) Enroll(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	s := f.students[studentID]
	if _, ok := s.Enrollment(courseID); ok {
		return false, nil
	}
	s.EnrolledCourses = append(s.EnrolledCourses, models.Enrollment{CourseID: courseID, Status: models.StatusEnrolled})
	return true, nil
}

func (f *fakeStudents) MarkFeedbackGiven(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	if f.markErr != nil {
		return false, f.markErr
	}
	s, ok := f.students[studentID]
	if !ok {
		return false, nil
	}
	for i := range s.EnrolledCourses {
		if s.EnrolledCourses[i].CourseID == courseID {
			s.EnrolledCourses[i].Status = models.StatusFeedbackGiven
			f.marked++
			return true, nil
		}
	}
	return false, nil
}

type fakeCourses struct {
	courses   []*models.Course
	createErr error
	lastList  models.CourseFilter
}

func (f *fakeCourses) Create(_ context.Context, c *models.Course) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = uuid.New()
	f.courses = append(f.courses, c)
	return nil
}

func (f *fakeCourses) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourses) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.CourseCode == code {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourses) List(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	f.lastList = filter
	return f.courses, nil
}

func (f *fakeCourses) Update(_ context.Context, c *models.Course) error {
	for i, existing := range f.courses {
		if existing.ID == c.ID {
			f.courses[i] = c
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (f *fakeCourses) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range f.courses {
		if c.ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

type fakeQuestions struct {
	questions []*models.FeedbackQuestion
}

func (f *fakeQuestions) Create(_ context.Context, q *models.FeedbackQuestion) error {
	q.ID = uuid.New()
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakeQuestions) List(_ context.Context, ct models.CourseType) ([]*models.FeedbackQuestion, error) {
	out := []*models.FeedbackQuestion{}
	for _, q := range f.questions {
		if ct == "" || q.CourseType == ct {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) UpdateText(_ context.Context, id uuid.UUID, text string) (*models.FeedbackQuestion, error) {
	for _, q := range f.questions {
		if q.ID == id {
			q.Question = text
			return q, nil
		}
	}
	return nil, apperrors.ErrQuestionNotFound
}

func (f *fakeQuestions) Delete(_ context.Context, id uuid.UUID) error {
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrQuestionNotFound
}

func (f *fakeQuestions) CountByCourseType(ctx context.Context, ct models.CourseType) (int, error) {
	qs, _ := f.List(ctx, ct)
	return len(qs), nil
}

type fakeFeedback struct {
	saved     []*models.FeedbackResponse
	createErr error
}

func (f *fakeFeedback) Create(_ context.Context, fb *models.FeedbackResponse) error {
	if f.createErr != nil {
		return f.createErr
	}
	fb.ID = uuid.New()
	fb.CreatedAt = time.Now()
	f.saved = append(f.saved, fb)
	return nil
}

func (f *fakeFeedback) List(_ context.Context, filter models.FeedbackFilter) ([]*models.FeedbackResponse, error) {
	var out []*models.FeedbackResponse
	for _, fb := range f.saved {
		if fb.CourseID != filter.CourseID {
			continue
		}
		if filter.FacultyName != "" && fb.FacultyName != filter.FacultyName {
			continue
		}
		out = append(out, fb)
	}
	return out, nil
}

type recordingNotifier struct {
	sent []email.FeedbackConfirmation
	err  error
}

func (n *recordingNotifier) SendFeedbackConfirmation(_ context.Context, msg email.FeedbackConfirmation) error {
	n.sent = append(n.sent, msg)
	return n.err
}
