// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware redirects plain HTTP requests to HTTPS on
// httpsPort. ACME challenge paths are let through for certmagic.
func HTTPSRedirectMiddleware(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if already HTTPS
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		// Skip for ACME challenges
		if strings.HasPrefix(c.Request.URL.Path, "/.well-known/acme-challenge/") {
			c.Next()
			return
		}

		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if httpsPort != "" && httpsPort != "443" {
			host = net.JoinHostPort(host, httpsPort)
		}

		// 308 keeps the method so palette form posts survive the hop
		// URL.RequestURI is path and query even for absolute-form request lines
		httpsURL := "https://" + host + c.Request.URL.RequestURI()
		c.Redirect(http.StatusPermanentRedirect, httpsURL)
		c.Abort()
	}
}
