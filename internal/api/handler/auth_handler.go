package handler

import (
	"errors"
	"net/http"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService    service.AuthService
	accessTokenTTL int64 // seconds, echoed in token responses
}

func NewAuthHandler(authService service.AuthService, accessTokenTTLSeconds int64) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accessTokenTTL: accessTokenTTLSeconds,
	}
}

// RegisterRoutes registers signup and token routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/restaurant/signup", h.RestaurantSignup)
	router.POST("/employee/signup", h.EmployeeSignup)

	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

// RestaurantSignup handles POST /api/restaurant/signup
func (h *AuthHandler) RestaurantSignup(c *gin.Context) {
	var req dto.RestaurantSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeValidationFailed, "Signup failed", err.Error()))
		return
	}

	user, err := h.authService.RegisterRestaurant(req.Email, req.Password, req.RestaurantName)
	if err != nil {
		h.signupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Restaurant registered successfully", signupResponse(user)))
}

// EmployeeSignup handles POST /api/employee/signup
func (h *AuthHandler) EmployeeSignup(c *gin.Context) {
	var req dto.EmployeeSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeValidationFailed, "Signup failed", err.Error()))
		return
	}

	user, err := h.authService.RegisterEmployee(req.Email, req.Password)
	if err != nil {
		h.signupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Employee registered successfully", signupResponse(user)))
}

func (h *AuthHandler) signupError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrEmailInUse) {
		c.JSON(http.StatusConflict, dto.Fail(dto.CodeEmailInUse, "Account creation failed"))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Fail(dto.CodeInternal, "Account creation failed"))
}

func signupResponse(user *models.User) dto.SignupResponse {
	resp := dto.SignupResponse{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	}
	if user.RestaurantCode != nil {
		resp.RestaurantID = *user.RestaurantCode
	}
	if user.RestaurantName != nil {
		resp.RestaurantName = *user.RestaurantName
	}
	if user.EmployeeCode != nil {
		resp.EmployeeID = *user.EmployeeCode
	}
	return resp
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeValidationFailed, "Login failed", err.Error()))
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeInvalidCredentials, "Invalid email or password"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login successful", dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		UserType:     user.UserType,
		ExpiresIn:    h.accessTokenTTL,
	}))
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailWith(dto.CodeValidationFailed, "Refresh failed", err.Error()))
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "Invalid refresh token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("Token refreshed", dto.RefreshResponse{
		AccessToken: newAccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.accessTokenTTL,
	}))
}
