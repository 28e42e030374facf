package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Thiyagu2009/mindtales/internal/api/middleware"
	"github.com/Thiyagu2009/mindtales/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppVersion(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"HeaderPresent", "2.1", "2.1"},
		{"HeaderAbsent", "", service.DefaultAppVersion},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(middleware.AppVersion())

			var got string
			r.GET("/probe", func(c *gin.Context) {
				got = c.GetString(middleware.AppVersionKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("X-App-Version", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, got)
		})
	}
}
