package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wabuluka/storefront-geo-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/geo/detect", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIPFromRequest_XForwardedForFirstEntryWins(t *testing.T) {
	c := newTestContext("203.0.113.9:1234", map[string]string{
		"X-Forwarded-For": " 93.184.216.34 , 70.41.3.18, 150.172.238.178",
		"X-Real-IP":       "198.51.100.7",
	})

	assert.Equal(t, "93.184.216.34", utils.ClientIPFromRequest(c))
}

func TestClientIPFromRequest_XRealIPSecond(t *testing.T) {
	c := newTestContext("203.0.113.9:1234", map[string]string{
		"X-Real-IP": "198.51.100.7",
	})

	assert.Equal(t, "198.51.100.7", utils.ClientIPFromRequest(c))
}

func TestClientIPFromRequest_FallsBackToRemoteAddr(t *testing.T) {
	c := newTestContext("203.0.113.9:1234", nil)

	assert.Equal(t, "203.0.113.9", utils.ClientIPFromRequest(c))
}

func TestClientIPFromRequest_LoopbackWhenNothingAvailable(t *testing.T) {
	c := newTestContext("", nil)

	assert.Equal(t, "127.0.0.1", utils.ClientIPFromRequest(c))
}
