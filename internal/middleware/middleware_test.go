package middleware

import (
	"context"
	"encoding/json"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubResolver accepts exactly one token.
type stubResolver struct {
	token string
	user  *model.User
	calls int
}

func (s *stubResolver) Resolve(_ context.Context, credential string) (*model.User, error) {
	s.calls++
	switch credential {
	case "":
		return nil, util.ErrNotAuthenticated
	case s.token:
		return s.user, nil
	default:
		return nil, util.ErrUnauthorized
	}
}

func newAuthRouter(resolver SessionResolver) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(resolver))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": util.GetUserFromContext(c).ID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	resolver := &stubResolver{token: "good", user: &model.User{BaseModel: model.BaseModel{ID: 7}, Username: "alice"}}
	r := newAuthRouter(resolver)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   util.ErrorCode
	}{
		{"no header", "", http.StatusForbidden, util.CodeNotAuthenticated},
		{"non bearer scheme", "Basic YWxpY2U6cHc=", http.StatusForbidden, util.CodeNotAuthenticated},
		{"bad token", "Bearer bad", http.StatusUnauthorized, util.CodeUnauthorized},
		{"good token", "Bearer good", http.StatusOK, ""},
		{"lowercase scheme", "bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode == "" {
				var body map[string]uint
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body["id"] != 7 {
					t.Errorf("id = %d, want 7", body["id"])
				}
				return
			}
			var p util.Problem
			if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
				t.Fatalf("decode problem: %v", err)
			}
			if p.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", p.Code, tt.wantCode)
			}
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Header().Get(util.RequestIDHeader) == "" {
			t.Error("X-Request-ID not set")
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(util.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get(util.RequestIDHeader); got != "req-123" {
			t.Errorf("X-Request-ID = %q, want req-123", got)
		}
	})
}
