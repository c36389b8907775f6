// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCSRFSetsCookieOnGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	CSRFMiddleware(false)(c)

	if w.Code != http.StatusOK {
		t.Fatalf("GET should pass, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), csrfCookieName+"=") {
		t.Error("expected CSRF cookie to be set")
	}
	if GetCSRFToken(c) == "" {
		t.Error("token should be stored in context")
	}
	if !strings.Contains(GetCSRFTokenHTML(c), `name="csrf_token"`) {
		t.Error("hidden field missing")
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/palette", strings.NewReader("action=add"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "expected"})

	CSRFMiddleware(false)(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
}

func TestCSRFAcceptsMatchingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{"action": {"add"}, csrfFormField: {"expected"}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/palette", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "expected"})

	CSRFMiddleware(false)(c)

	if w.Code == http.StatusForbidden {
		t.Error("matching token should be accepted")
	}
}

func TestGetCSRFTokenHTMLWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if GetCSRFTokenHTML(c) != "" {
		t.Error("expected empty field without middleware")
	}
}
