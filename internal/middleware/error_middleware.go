package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
	"github.com/necfeedback/coursefeedback/internal/pkg/tabular"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var parseErr *tabular.ParseError

	switch {
	case apperrors.Is(err, apperrors.ErrNoFeedbackYet):
		c.JSON(http.StatusOK, dto.NoFeedbackResponse{Message: "No feedback yet"})
		return
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrCourseNotFound, apperrors.ErrStudentNotFound,
		apperrors.ErrQuestionNotFound, apperrors.ErrAdminNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found"))
	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, apperrors.Message(err, "Permission denied"))
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, apperrors.Message(err, "Invalid credentials"))
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case apperrors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, apperrors.Message(err, "Invalid email"))
	case apperrors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, apperrors.Message(err, "Invalid password"))
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed"))
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrAdminAlreadyExists, apperrors.ErrStudentExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err, "Resource already exists"))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrAlreadyEnrolled, apperrors.ErrNotEnrolled),
		errors.As(err, &parseErr):
		respond(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, apperrors.Message(err, "Bad request"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
