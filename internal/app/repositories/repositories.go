package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/necfeedback/coursefeedback/internal/db"
)

// psql is the statement builder shared by all repositories
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository    *AdminRepository
	StudentRepository  *StudentRepository
	CourseRepository   *CourseRepository
	QuestionRepository *QuestionRepository
	FeedbackRepository *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AdminRepository:    NewAdminRepository(database.Pool),
		StudentRepository:  NewStudentRepository(database.Pool),
		CourseRepository:   NewCourseRepository(database.Pool),
		QuestionRepository: NewQuestionRepository(database.Pool),
		FeedbackRepository: NewFeedbackRepository(database),
	}
}
