package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := CORSConfig{
		AllowedOrigins: []string{
			"https://localhost:8443",
			"https://app.example.com",
		},
	}

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{
			name:       "request without origin passes untouched",
			method:     http.MethodGet,
			origin:     "",
			wantStatus: http.StatusOK,
		},
		{
			name:        "allowed origin gets CORS headers",
			method:      http.MethodGet,
			origin:      "https://localhost:8443",
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "allowed origin trailing slash",
			method:      http.MethodGet,
			origin:      "https://localhost:8443/",
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "allowed origin case insensitive",
			method:      http.MethodGet,
			origin:      "HTTPS://APP.EXAMPLE.COM",
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:       "disallowed origin gets no headers",
			method:     http.MethodGet,
			origin:     "https://evil.com",
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight from allowed origin",
			method:      http.MethodOptions,
			origin:      "https://app.example.com",
			wantStatus:  http.StatusNoContent,
			wantAllowed: true,
		},
		{
			name:       "preflight from disallowed origin blocked",
			method:     http.MethodOptions,
			origin:     "https://evil.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.Use(CORS(config))
			r.Any("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("CORS() status = %d, want %d", w.Code, tt.wantStatus)
			}

			allowed := w.Header().Get("Access-Control-Allow-Origin") != ""
			if allowed != tt.wantAllowed {
				t.Errorf("Access-Control-Allow-Origin set = %v, want %v", allowed, tt.wantAllowed)
			}
		})
	}
}
