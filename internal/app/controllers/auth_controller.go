package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/necfeedback/coursefeedback/internal/app/models/dto"
	"github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/middleware"
)

// AuthController handles account registration and login
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterAdmin handles admin registration
// @Summary Register an admin
// @Description Creates an admin account. The email must belong to the institution domain.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminRegisterRequest true "Admin details"
// @Success 200 {object} dto.SuccessResponse "Admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Admin already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/register [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterAdmin(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Admin registered successfully"})
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account. The email must belong to the institution domain.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student details"
// @Success 200 {object} dto.SuccessResponse "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Student already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterStudent(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student registered successfully"})
}

// LoginAdmin handles admin login
// @Summary Admin login
// @Description Authenticates an admin by email or name and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginAdmin(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// LoginStudent handles student login
// @Summary Student login
// @Description Authenticates a student by roll number and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
