package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
)

// QuestionStore is the part of the question repository the seeder needs
type QuestionStore interface {
	Create(ctx context.Context, q *models.FeedbackQuestion) error
	CountByCourseType(ctx context.Context, courseType models.CourseType) (int, error)
}

// DefaultQuestions is the starter questionnaire of each course type
var DefaultQuestions = map[models.CourseType][]string{
	models.CourseTypeTheory: {
		"The faculty explains concepts clearly",
		"The faculty is punctual and covers the syllabus on time",
		"The faculty encourages questions and discussion",
		"Assignments and tests help in understanding the subject",
		"The faculty is available for doubt clarification",
	},
	models.CourseTypePractical: {
		"The faculty explains the experiments before the lab session",
		"Lab equipment and software are in working condition",
		"The faculty guides students during experiments",
		"Record work is evaluated and returned on time",
	},
	models.CourseTypeIntegrated: {
		"The faculty explains concepts clearly",
		"Theory sessions are well connected to lab sessions",
		"The faculty guides students during experiments",
		"Assessments cover both theory and practical components",
		"The faculty is available for doubt clarification",
	},
}

// CreateDefaultData seeds the default questionnaire of every course type that has no
// questions yet. Course types already configured by an admin are left alone.
func CreateDefaultData(ctx context.Context, questions QuestionStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (feedback questions)...")
	var finalErr error // To collect potential errors without stopping the process

	for _, courseType := range models.CourseTypes {
		count, err := questions.CountByCourseType(ctx, courseType)
		if err != nil {
			lgr.Error().Err(err).Str("courseType", string(courseType)).Msg("Error counting questions")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if count > 0 {
			lgr.Debug().Str("courseType", string(courseType)).Int("questions", count).Msg("Questionnaire exists, skipping")
			continue
		}

		for _, text := range DefaultQuestions[courseType] {
			if err := questions.Create(ctx, &models.FeedbackQuestion{CourseType: courseType, Question: text}); err != nil {
				lgr.Error().Err(err).Str("courseType", string(courseType)).Msg("Error creating default question")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Str("courseType", string(courseType)).Int("questions", len(DefaultQuestions[courseType])).
			Msg("Default questionnaire created")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
