package dto

// Data Transfer Objects for signup and authentication

// RestaurantSignupRequest: payload for restaurant registration
type RestaurantSignupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	RestaurantName string `json:"restaurant_name" binding:"required,min=2,max=100"`
}

// EmployeeSignupRequest: payload for employee registration
type EmployeeSignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	UserType     string `json:"user_type"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// SignupResponse: response payload after successful registration
type SignupResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	UserType       string `json:"user_type"`
	RestaurantID   string `json:"restaurant_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	EmployeeID     string `json:"employee_id,omitempty"`
}

// RefreshTokenRequest: payload for refreshing the access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse: response payload after refreshing the access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}
