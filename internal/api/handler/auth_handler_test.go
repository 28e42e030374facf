package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/handler"
	"github.com/Thiyagu2009/mindtales/internal/api/models"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterRestaurant(email, password, restaurantName string) (*models.User, error) {
	args := m.Called(email, password, restaurantName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) RegisterEmployee(email, password string) (*models.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupAuthRouter(authSvc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	handler.NewAuthHandler(authSvc, 900).RegisterRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeSignup_Success(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	employeeID := "E-1A2B3C4D"
	authSvc.On("RegisterEmployee", "emp@example.com", "password123").Return(&models.User{
		ID:           "user-1",
		Email:        "emp@example.com",
		UserType:     models.UserTypeEmployee,
		EmployeeCode: &employeeID,
	}, nil)

	w := postJSON(r, "/api/employee/signup", `{"email":"emp@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	authSvc.AssertExpectations(t)
}

func TestRestaurantSignup_EmailInUse(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	authSvc.On("RegisterRestaurant", "taken@example.com", "password123", "The Bistro").
		Return(nil, service.ErrEmailInUse)

	w := postJSON(r, "/api/restaurant/signup",
		`{"email":"taken@example.com","password":"password123","restaurant_name":"The Bistro"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.CodeEmailInUse, resp.Code)
}

func TestSignup_ValidationFailure(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	w := postJSON(r, "/api/employee/signup", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.CodeValidationFailed, resp.Code)
	authSvc.AssertNotCalled(t, "RegisterEmployee", mock.Anything, mock.Anything)
}

func TestLogin_Succeeds(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	authSvc.On("Login", "emp@example.com", "password123").
		Return("access-token", "refresh-token", &models.User{ID: "user-1", UserType: models.UserTypeEmployee}, nil)

	w := postJSON(r, "/api/auth/login", `{"email":"emp@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	authSvc.On("Login", "emp@example.com", "wrong").
		Return("", "", nil, service.ErrInvalidCredentials)

	w := postJSON(r, "/api/auth/login", `{"email":"emp@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.CodeInvalidCredentials, resp.Code)
}

func TestRefresh_InvalidToken(t *testing.T) {
	authSvc := new(MockAuthService)
	r := setupAuthRouter(authSvc)

	authSvc.On("RefreshAccessToken", "stale").Return("", service.ErrInvalidToken)

	w := postJSON(r, "/api/auth/refresh", `{"refresh_token":"stale"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, dto.CodeUnauthorized, resp.Code)
}
