package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v))
	return v
}

func TestDomainTags(t *testing.T) {
	v := newValidator(t)

	valid := dto.CourseRequest{
		Program: models.ProgramBTech, Dept: models.DeptAIDS, Year: 4, Sem: 8,
		CourseCode: "AD3401", CourseName: "Deep Learning", CourseType: "Integrated",
		Faculty: []string{"Dr. Rao"},
	}
	assert.NoError(t, v.Struct(valid))

	invalid := valid
	invalid.CourseType = "seminar"
	invalid.Dept = "ARTS"
	err := v.Struct(invalid)
	require.Error(t, err)

	detail := BindingErrorDetail(err)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Dept must be one of: CSE, IT, AIDS, ECE, EEE, MECH, CIVIL", detail.Message)
	assert.Equal(t, "Dept", detail.Field)
	assert.Len(t, detail.Details, 2)

	badCode := valid
	badCode.CourseCode = "AD 3401"
	err = v.Struct(badCode)
	require.Error(t, err)
	assert.Equal(t, "CourseCode may only contain letters, digits and dashes", BindingErrorDetail(err).Message)
}

func TestRatingTag(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.FeedbackItemRequest{QuestionText: "Clarity", Answer: "Very Poor"}))

	err := v.Struct(dto.FeedbackItemRequest{QuestionText: "Clarity", Answer: "Superb"})
	require.Error(t, err)
	assert.Equal(t, "Answer must be one of: Excellent, Good, Average, Poor, Very Poor", BindingErrorDetail(err).Message)
}

func TestBindingErrorDetailForMalformedBody(t *testing.T) {
	detail := BindingErrorDetail(assert.AnError)
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, assert.AnError.Error(), detail.Details)
}

func TestRegisterValidators(t *testing.T) {
	assert.NoError(t, RegisterValidators())
}
