package dto

import "github.com/necfeedback/coursefeedback/internal/app/models"

// AdminRegisterRequest represents admin registration data
type AdminRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StudentRegisterRequest represents student registration data
type StudentRegisterRequest struct {
	Name     string `json:"name"`
	RollNo   string `json:"rollno"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest accepts either the admin's email or name as identifier
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Identifier returns the login handle, preferring email
func (r AdminLoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Name
}

// StudentLoginRequest represents student credentials
type StudentLoginRequest struct {
	RollNo   string `json:"rollno"`
	Password string `json:"password"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AdminLoginResponse represents a successful admin login
type AdminLoginResponse struct {
	Message string        `json:"message" example:"Admin login successful"`
	Admin   *models.Admin `json:"admin"`
	Token   TokenResponse `json:"token"`
}

// StudentLoginResponse represents a successful student login
type StudentLoginResponse struct {
	Message string          `json:"message" example:"Student login successful"`
	Student *models.Student `json:"student"`
	Token   TokenResponse   `json:"token"`
}
