package middleware

import (
	"net/http"
	"strings"

	"github.com/Thiyagu2009/mindtales/internal/api/dto"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization header.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "missing authorization header"))
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.Fail(dto.CodeUnauthorized, "invalid token"))
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks if the user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, dto.Fail(dto.CodeForbidden, "role not found in token"))
			c.Abort()
			return
		}

		userRole, ok := roleInterface.(string)
		if !ok || userRole != requiredRole {
			c.JSON(http.StatusForbidden, dto.Fail(dto.CodeForbidden, "insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireEmployee is a convenience function for the voting endpoints
func RequireEmployee() gin.HandlerFunc {
	return RequireRole("employee")
}

// RequireRestaurant is a convenience function for the menu endpoints
func RequireRestaurant() gin.HandlerFunc {
	return RequireRole("restaurant")
}
