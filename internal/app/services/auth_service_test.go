package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/auth"
)

func newTestAuthService() (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "coursefeedback-test",
	})
	return NewAuthService(&fakeAdmins{}, newFakeStudents(), jwtService, "@NEC.edu.in", zerolog.Nop()), jwtService
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.StudentRegisterRequest
		target  error
		message string
	}{
		{
			name:    "missing field",
			req:     dto.StudentRegisterRequest{Name: "Asha", Email: "asha@nec.edu.in", Password: "secret#12"},
			target:  apperrors.ErrValidationFailed,
			message: "All fields required",
		},
		{
			name:    "foreign domain",
			req:     dto.StudentRegisterRequest{Name: "Asha", RollNo: "21CS001", Email: "asha@gmail.com", Password: "secret#12"},
			target:  apperrors.ErrInvalidEmail,
			message: "Email must end with @nec.edu.in",
		},
		{
			name:    "weak password",
			req:     dto.StudentRegisterRequest{Name: "Asha", RollNo: "21CS001", Email: "asha@nec.edu.in", Password: "secret123"},
			target:  apperrors.ErrInvalidPassword,
			message: "Password must be at least 8 characters and include a special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RegisterStudent(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
		})
	}
}

func TestStudentRegisterAndLogin(t *testing.T) {
	svc, jwtService := newTestAuthService()
	ctx := context.Background()

	req := dto.StudentRegisterRequest{Name: "Asha", RollNo: "21CS001", Email: "Asha@NEC.edu.in", Password: "secret#12"}
	require.NoError(t, svc.RegisterStudent(ctx, req))

	err := svc.RegisterStudent(ctx, dto.StudentRegisterRequest{Name: "Other", RollNo: "21CS001", Email: "other@nec.edu.in", Password: "secret#12"})
	assert.ErrorIs(t, err, apperrors.ErrStudentExists)
	assert.Equal(t, "Student already exists", apperrors.Message(err, ""))

	resp, err := svc.LoginStudent(ctx, dto.StudentLoginRequest{RollNo: "21CS001", Password: "secret#12"})
	require.NoError(t, err)
	assert.Equal(t, "Student login successful", resp.Message)
	assert.Equal(t, "asha@nec.edu.in", resp.Student.Email)
	assert.Equal(t, "Bearer", resp.Token.TokenType)

	claims, err := jwtService.ValidateToken(resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Student.ID.String(), claims.UserID)
	assert.Equal(t, string(models.RoleStudent), claims.RoleType)

	_, err = svc.LoginStudent(ctx, dto.StudentLoginRequest{RollNo: "21CS001", Password: "wrong#pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, "Invalid password", apperrors.Message(err, ""))

	_, err = svc.LoginStudent(ctx, dto.StudentLoginRequest{RollNo: "99XX999", Password: "secret#12"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, "Student not found", apperrors.Message(err, ""))
}

func TestAdminRegisterAndLogin(t *testing.T) {
	svc, jwtService := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.RegisterAdmin(ctx, dto.AdminRegisterRequest{Name: "Office", Email: "office@nec.edu.in", Password: "admin#123"}))

	err := svc.RegisterAdmin(ctx, dto.AdminRegisterRequest{Name: "Office 2", Email: "office@nec.edu.in", Password: "admin#123"})
	assert.ErrorIs(t, err, apperrors.ErrAdminAlreadyExists)
	assert.Equal(t, "Admin already exists", apperrors.Message(err, ""))

	byEmail, err := svc.LoginAdmin(ctx, dto.AdminLoginRequest{Email: "office@nec.edu.in", Password: "admin#123"})
	require.NoError(t, err)
	assert.Equal(t, "Admin login successful", byEmail.Message)

	claims, err := jwtService.ValidateToken(byEmail.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.RoleType)

	byName, err := svc.LoginAdmin(ctx, dto.AdminLoginRequest{Name: "Office", Password: "admin#123"})
	require.NoError(t, err)
	assert.Equal(t, byEmail.Admin.ID, byName.Admin.ID)

	_, err = svc.LoginAdmin(ctx, dto.AdminLoginRequest{Email: "nobody@nec.edu.in", Password: "admin#123"})
	assert.Equal(t, "Admin not found", apperrors.Message(err, ""))
}
