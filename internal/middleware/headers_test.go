// SPDX-License-Identifier: MIT
package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	SecurityHeadersMiddleware()(c)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff header")
	}
	csp := w.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "img-src 'self' data:") {
		t.Errorf("CSP must allow data: images for generated swatches: %s", csp)
	}
	// config is not initialized in tests, so TLS counts as disabled
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should only be sent with TLS enabled")
	}
}

func TestHTTPSRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		target   string
		port     string
		tls      bool
		wantCode int
		wantLoc  string
	}{
		{"plain http", "http://paleta.example.org:8080/?color1=%23FF0000", "443", false,
			http.StatusPermanentRedirect, "https://paleta.example.org/?color1=%23FF0000"},
		{"custom port", "http://paleta.example.org/", "8443", false,
			http.StatusPermanentRedirect, "https://paleta.example.org:8443/"},
		{"origin form", "/download?color1=%23FF0000", "443", false,
			http.StatusPermanentRedirect, "https://example.com/download?color1=%23FF0000"},
		{"acme challenge", "http://paleta.example.org/.well-known/acme-challenge/abc", "443", false,
			http.StatusOK, ""},
		{"already https", "https://paleta.example.org/", "443", true,
			http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", tt.target, nil)
			if tt.tls {
				c.Request.TLS = &tls.ConnectionState{}
			}

			HTTPSRedirectMiddleware(tt.port)(c)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if got := w.Header().Get("Location"); got != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got, tt.wantLoc)
			}
		})
	}
}
