// SPDX-License-Identifier: MIT
package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware blocks requests based on client IP address.
// A blocklist match always wins; a non-empty allowlist then admits only
// the ranges it names. Entries are CIDRs or single addresses.
func IPFilterMiddleware(blocklist, allowlist []string) gin.HandlerFunc {
	blocked := parseRanges(blocklist)
	allowed := parseRanges(allowlist)

	return func(c *gin.Context) {
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		if containsIP(blocked, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		if len(allowed) > 0 && !containsIP(allowed, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		c.Next()
	}
}

// parseRanges turns config entries into networks, skipping bad ones
func parseRanges(entries []string) []*net.IPNet {
	ranges := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				ranges = append(ranges, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("IP filter: ignoring invalid range %q", entry)
			continue
		}
		ranges = append(ranges, ipNet)
	}
	return ranges
}

func containsIP(ranges []*net.IPNet, ip net.IP) bool {
	for _, ipNet := range ranges {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// extractIP extracts the client IP from the request
// Handles X-Forwarded-For header if behind proxy
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(clientAddr(c))
}

// clientAddr returns the client address as a string, preferring the first
// X-Forwarded-For entry
func clientAddr(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		// If no port, use the whole string
		return c.Request.RemoteAddr
	}
	return host
}
