package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/time/rate"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS([]string{"http://localhost:5173/"}))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://localhost:5173", wantStatus: http.StatusOK, wantOrigin: "http://localhost:5173"},
		{name: "unknown origin", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:5173", wantStatus: http.StatusNoContent, wantOrigin: "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodOptions {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
			}
		})
	}
}

func TestCORSWildcard(t *testing.T) {
	r := newRouter(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSecureHeaders(t *testing.T) {
	r := newRouter(Secure())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRateLimiter(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := newRouter(RateLimiter(ctx, 2, time.Hour))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// 其它 IP 有独立的令牌桶
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	cancel()
}

func TestLimiterStoreEvict(t *testing.T) {
	store := &limiterStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Second),
		burst:    1,
	}
	now := time.Now()
	store.get("a", now.Add(-2*time.Hour))
	store.get("b", now)

	assert.Equal(t, 1, store.evict(now, time.Hour))
	assert.Len(t, store.visitors, 1)
	assert.Contains(t, store.visitors, "b")
}
