package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/validation"
)

// RegisterValidators adds the domain tags used in request binding:
// coursetype, rating, program and dept.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"coursetype": func(fl validator.FieldLevel) bool {
			_, ok := models.ParseCourseType(fl.Field().String())
			return ok
		},
		"rating": func(fl validator.FieldLevel) bool {
			return models.RatingCategory(fl.Field().String()).IsValid()
		},
		"program": func(fl validator.FieldLevel) bool {
			return models.Program(fl.Field().String()).IsValid()
		},
		"dept": func(fl validator.FieldLevel) bool {
			return models.Department(fl.Field().String()).IsValid()
		},
		"coursecode": func(fl validator.FieldLevel) bool {
			return validation.IsCourseCode(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// BindingErrorDetail converts a ShouldBind error into an API error detail
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, formatValidationError(e))
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messages[0]).
		WithField(verrs[0].Field()).
		WithDetails(messages)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "uuid":
		return e.Field() + " must be a valid id"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "coursetype":
		return e.Field() + " must be one of: theory, practical, integrated"
	case "rating":
		return e.Field() + " must be one of: Excellent, Good, Average, Poor, Very Poor"
	case "program":
		return e.Field() + " must be one of: " + joinValues(models.Programs)
	case "dept":
		return e.Field() + " must be one of: " + joinValues(models.Departments)
	case "coursecode":
		return e.Field() + " may only contain letters, digits and dashes"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
