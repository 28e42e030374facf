package middleware

import (
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AppVersionKey is the context key the voting handler reads the client
// version from.
const AppVersionKey = "appVersion"

// AppVersion extracts the client capability signal from the
// X-App-Version header. Clients that predate the header get the oldest
// supported version.
func AppVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		version := c.GetHeader("X-App-Version")
		if version == "" {
			version = service.DefaultAppVersion
		}
		c.Set(AppVersionKey, version)
		c.Next()
	}
}
