package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func get(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitPerIP(t *testing.T) {
	r := newRouter(RateLimitMiddleware(NewRateLimiterStore(2)))

	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1").Code)
	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "1.1.1.1").Code)
	assert.Equal(t, http.StatusOK, get(r, "2.2.2.2").Code)
}

func TestRateLimiterStoreEvictsIdleEntries(t *testing.T) {
	s := NewRateLimiterStore(10)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.getLimiter("a")
	clock = clock.Add(2 * idleLimiterTTL)
	s.getLimiter("b")

	assert.Len(t, s.limiters, 1)
	assert.Contains(t, s.limiters, "b")
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := newRouter()

	w := get(r, "1.1.1.1")
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(utils.RequestIDHeader))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", " 198.51.100.2 ")
	assert.Equal(t, "198.51.100.2", getClientIP(c))
}
