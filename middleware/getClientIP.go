package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the address the rate limiter keys on. Proxy headers
// win over the socket address so visitors behind the load balancer are not
// lumped into one bucket.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For lists every hop; the originating client is first.
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		return real
	}

	remote := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}
