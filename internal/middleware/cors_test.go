package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCORSRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORS(t *testing.T) {
	origins := []string{"http://localhost:1234", "http://localhost:4200"}

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "no origin header passes",
			method:         http.MethodGet,
			origin:         "",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
		{
			name:           "allowed origin is echoed back",
			method:         http.MethodGet,
			origin:         "http://localhost:1234",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:1234",
		},
		{
			name:           "second allowed origin is echoed back",
			method:         http.MethodGet,
			origin:         "http://localhost:4200",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:4200",
		},
		{
			name:           "unlisted origin is rejected",
			method:         http.MethodGet,
			origin:         "http://evil.example.com",
			expectedStatus: http.StatusForbidden,
			expectedOrigin: "",
		},
		{
			name:           "preflight from allowed origin",
			method:         http.MethodOptions,
			origin:         "http://localhost:1234",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "http://localhost:1234",
		},
		{
			name:           "preflight from unlisted origin is rejected",
			method:         http.MethodOptions,
			origin:         "http://evil.example.com",
			expectedStatus: http.StatusForbidden,
			expectedOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupCORSRouter(origins)

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Headers(t *testing.T) {
	router := setupCORSRouter([]string{"http://localhost:1234"})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:1234")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin, Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_EmptyAllowList(t *testing.T) {
	router := setupCORSRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:1234")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
