package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestRateLimit_PerClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/pay", middleware.RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/pay", nil)
		req.RemoteAddr = ip + ":40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := call("10.0.0.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)
	blocked := call("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "Too many requests")

	assert.Equal(t, http.StatusOK, call("10.0.0.2").Code, "other clients keep their own budget")
}
