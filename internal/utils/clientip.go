package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIPFromRequest extracts the best-effort client IP for geolocation.
// Precedence: first X-Forwarded-For entry, X-Real-IP, gin's ClientIP,
// socket remote address, loopback. The result may still be malformed;
// downstream lookup failures fall back to default location data.
func ClientIPFromRequest(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil && host != "" {
		return host
	}

	return "127.0.0.1"
}
