package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/auth"
	"github.com/necfeedback/coursefeedback/internal/pkg/validation"
)

// AuthService handles account registration and login
type AuthService interface {
	RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) error
	RegisterStudent(ctx context.Context, req dto.StudentRegisterRequest) error
	LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	LoginStudent(ctx context.Context, req dto.StudentLoginRequest) (*dto.StudentLoginResponse, error)
}

type authServiceImpl struct {
	admins      AdminStore
	students    StudentStore
	jwtService  *auth.JWTService
	emailDomain string
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService. emailDomain is the institution domain every
// account email must belong to.
func NewAuthService(admins AdminStore, students StudentStore, jwtService *auth.JWTService, emailDomain string, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		admins:      admins,
		students:    students,
		jwtService:  jwtService,
		emailDomain: validation.NormalizeDomain(emailDomain),
		logger:      logger,
	}
}

// validateAccount applies the shared email and password rules
func (s *authServiceImpl) validateAccount(email, password string) error {
	if !validation.HasInstitutionDomain(email, s.emailDomain) {
		return &apperrors.CustomError{
			Err:     apperrors.ErrInvalidEmail,
			Message: "Email must end with @" + s.emailDomain,
		}
	}
	if !validation.IsStrongPassword(password) {
		return &apperrors.CustomError{
			Err: apperrors.ErrInvalidPassword,
			Message: fmt.Sprintf("Password must be at least %d characters and include a special character",
				validation.PasswordMinLength),
		}
	}
	return nil
}

func allPresent(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// RegisterAdmin creates an admin account
func (s *authServiceImpl) RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) error {
	if !allPresent(req.Name, req.Email, req.Password) {
		return apperrors.NewValidationError("All fields required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validateAccount(email, req.Password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash admin password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrAdminAlreadyExists) {
			return apperrors.NewConflictError(err, "Admin already exists")
		}
		return err
	}

	s.logger.Info().Str("adminID", admin.ID.String()).Msg("Admin registered")
	return nil
}

// RegisterStudent creates a student account
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req dto.StudentRegisterRequest) error {
	if !allPresent(req.Name, req.RollNo, req.Email, req.Password) {
		return apperrors.NewValidationError("All fields required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	rollNo := strings.TrimSpace(req.RollNo)
	if err := s.validateAccount(email, req.Password); err != nil {
		return err
	}

	existing, err := s.students.GetByEmailOrRollNo(ctx, email, rollNo)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.NewConflictError(apperrors.ErrStudentExists, "Student already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash student password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		Name:     strings.TrimSpace(req.Name),
		RollNo:   rollNo,
		Email:    email,
		Password: hash,
	}
	// The unique constraints still decide when two registrations race.
	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrStudentExists) {
			return apperrors.NewConflictError(err, "Student already exists")
		}
		return err
	}

	s.logger.Info().Str("studentID", student.ID.String()).Msg("Student registered")
	return nil
}

// LoginAdmin checks admin credentials; the identifier may be an email or a name
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier())
	if identifier == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("All fields required")
	}

	var (
		admin *models.Admin
		err   error
	)
	if strings.Contains(identifier, "@") {
		admin, err = s.admins.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		admin, err = s.admins.GetByName(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: "Admin not found"}
		}
		return nil, err
	}
	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: "Invalid password"}
	}

	token, err := s.issueToken(admin.ID.String(), auth.Subject{ID: admin.ID, Email: admin.Email, Role: string(models.RoleAdmin)})
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Message: "Admin login successful", Admin: admin, Token: token}, nil
}

// LoginStudent checks student credentials by roll number
func (s *authServiceImpl) LoginStudent(ctx context.Context, req dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	rollNo := strings.TrimSpace(req.RollNo)
	if rollNo == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("All fields required")
	}

	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: "Student not found"}
		}
		return nil, err
	}
	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: "Invalid password"}
	}

	token, err := s.issueToken(student.ID.String(), auth.Subject{ID: student.ID, Email: student.Email, Role: string(models.RoleStudent)})
	if err != nil {
		return nil, err
	}
	return &dto.StudentLoginResponse{Message: "Student login successful", Student: student, Token: token}, nil
}

func (s *authServiceImpl) issueToken(accountID string, subject auth.Subject) (dto.TokenResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(subject)
	if err != nil {
		s.logger.Error().Err(err).Str("accountID", accountID).Msg("Failed to generate access token")
		return dto.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return dto.TokenResponse{AccessToken: accessToken, TokenType: "Bearer", ExpiresIn: expiresIn}, nil
}
