package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
)

// AllFaculty labels an analysis that is not narrowed to one faculty member
const AllFaculty = "All Faculty"

// QuestionTally holds the answer counts of one question text
type QuestionTally struct {
	Question string
	Counts   dto.RatingCounts
}

// FeedbackSummary is the per-question distribution of a set of responses
type FeedbackSummary struct {
	TotalResponses int
	CourseName     string
	Questions      []QuestionTally
}

// countRating increments the counter of answer. Labels outside the scale are not counted.
func countRating(c *dto.RatingCounts, answer models.RatingCategory) {
	switch answer {
	case models.RatingExcellent:
		c.Excellent++
	case models.RatingGood:
		c.Good++
	case models.RatingAverage:
		c.Average++
	case models.RatingPoor:
		c.Poor++
	case models.RatingVeryPoor:
		c.VeryPoor++
	}
}

// AggregateFeedback folds responses into answer counts grouped by question text, in the
// order questions are first seen. It returns apperrors.ErrNoFeedbackYet for an empty set.
func AggregateFeedback(responses []*models.FeedbackResponse) (*FeedbackSummary, error) {
	if len(responses) == 0 {
		return nil, apperrors.ErrNoFeedbackYet
	}

	summary := &FeedbackSummary{TotalResponses: len(responses), CourseName: responses[0].CourseName}
	index := make(map[string]int)
	for _, fb := range responses {
		for _, item := range fb.Responses {
			i, ok := index[item.QuestionText]
			if !ok {
				i = len(summary.Questions)
				index[item.QuestionText] = i
				summary.Questions = append(summary.Questions, QuestionTally{Question: item.QuestionText})
			}
			countRating(&summary.Questions[i].Counts, item.Answer)
		}
	}
	return summary, nil
}

// WeightedAverage scores counts on the 5..1 scale, rounded to two decimals; 0 when empty
func WeightedAverage(c dto.RatingCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	points := models.RatingExcellent.Points()*c.Excellent +
		models.RatingGood.Points()*c.Good +
		models.RatingAverage.Points()*c.Average +
		models.RatingPoor.Points()*c.Poor +
		models.RatingVeryPoor.Points()*c.VeryPoor
	return math.Round(float64(points)/float64(total)*100) / 100
}

// Analysis shapes the summary for the API. An empty facultyName is reported as AllFaculty.
func (s *FeedbackSummary) Analysis(facultyName string) *dto.FeedbackAnalysisResponse {
	if facultyName == "" {
		facultyName = AllFaculty
	}

	out := &dto.FeedbackAnalysisResponse{
		TotalResponses: s.TotalResponses,
		FacultyName:    facultyName,
		Summary:        make(map[string]dto.RatingCounts, len(s.Questions)),
		CSVData:        make([]dto.CSVRow, 0, len(s.Questions)),
		AverageRatings: make([]dto.QuestionAverage, 0, len(s.Questions)),
	}
	for _, q := range s.Questions {
		out.Summary[q.Question] = q.Counts
		out.CSVData = append(out.CSVData, dto.CSVRow{Question: q.Question, RatingCounts: q.Counts})
		out.AverageRatings = append(out.AverageRatings, dto.QuestionAverage{Question: q.Question, Average: WeightedAverage(q.Counts)})
	}
	return out
}

// WriteCSV writes the summary as a spreadsheet: a short preamble, then one row per question
// with the five counts and the weighted average.
func (s *FeedbackSummary) WriteCSV(w io.Writer, facultyName string) error {
	if facultyName == "" {
		facultyName = AllFaculty
	}

	cw := csv.NewWriter(w)
	records := [][]string{
		{"Course", s.CourseName},
		{"Faculty", facultyName},
		{"Total Responses", strconv.Itoa(s.TotalResponses)},
		{},
		{"Question", string(models.RatingExcellent), string(models.RatingGood), string(models.RatingAverage),
			string(models.RatingPoor), string(models.RatingVeryPoor), "Average Rating"},
	}
	for _, q := range s.Questions {
		records = append(records, []string{
			q.Question,
			strconv.Itoa(q.Counts.Excellent),
			strconv.Itoa(q.Counts.Good),
			strconv.Itoa(q.Counts.Average),
			strconv.Itoa(q.Counts.Poor),
			strconv.Itoa(q.Counts.VeryPoor),
			strconv.FormatFloat(WeightedAverage(q.Counts), 'f', 2, 64),
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write analysis csv: %w", err)
	}
	return nil
}
