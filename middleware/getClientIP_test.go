package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/funnel/session", nil)
	c.Request.RemoteAddr = "10.0.0.9:51234"
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := requestContext(t)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")

	assert.Equal(t, "203.0.113.7", getClientIP(c))
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	c := requestContext(t)
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")

	assert.Equal(t, "198.51.100.4", getClientIP(c))
}

func TestGetClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := requestContext(t)

	assert.Equal(t, "10.0.0.9", getClientIP(c))
}
