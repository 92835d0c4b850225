package security

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(3, time.Minute)
	defer l.Close()

	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(ctx, "a")
		if err != nil || !ok {
			t.Fatalf("request %d: allowed = %v, err = %v; want allowed", i+1, ok, err)
		}
	}

	ok, retry, err := l.Allow(ctx, "a")
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if ok {
		t.Fatal("fourth request allowed, want denied")
	}
	if retry <= 0 {
		t.Errorf("retry = %v, want positive", retry)
	}

	if ok, _, _ := l.Allow(ctx, "b"); !ok {
		t.Error("other key was limited")
	}
}

func TestMemoryLimiter_SetLimit(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(1, time.Minute)
	defer l.Close()

	l.Allow(ctx, "a")
	if ok, _, _ := l.Allow(ctx, "a"); ok {
		t.Fatal("second request allowed with limit 1")
	}

	l.SetLimit(5, time.Minute)
	if ok, _, _ := l.Allow(ctx, "fresh"); !ok {
		t.Error("request denied after raising limit")
	}

	// invalid values are ignored
	l.SetLimit(0, time.Minute)
	if ok, _, _ := l.Allow(ctx, "other"); !ok {
		t.Error("request denied after ignored SetLimit")
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("redis down")
}

func (failingLimiter) SetLimit(int, time.Duration) {}

func newLimitedRouter(l Limiter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimiter(l, "test"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	defer l.Close()
	r := newLimitedRouter(l)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}
	retry, err := strconv.Atoi(last.Header().Get("Retry-After"))
	if err != nil || retry < 1 {
		t.Errorf("Retry-After = %q, want positive seconds", last.Header().Get("Retry-After"))
	}
	if ct := last.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r := newLimitedRouter(failingLimiter{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when limiter backend fails", rec.Code)
	}
}

func TestSecureHeaders(t *testing.T) {
	r := gin.New()
	r.Use(Secure())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP request")
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
	})
}
