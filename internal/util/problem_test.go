package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveFail(t *testing.T, err error) (*httptest.ResponseRecorder, Problem) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/habits/42", nil)

	Fail(c, err)

	var p Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem: %v (body %s)", err, rec.Body.String())
	}
	return rec, p
}

func TestProblemType(t *testing.T) {
	tests := map[ErrorCode]string{
		CodeNotFound:         "https://habittracker.com/errors/not-found",
		CodeDuplicateCheckin: "https://habittracker.com/errors/duplicate-checkin",
		CodeValidation:       "https://habittracker.com/errors/validation-error",
	}
	for code, want := range tests {
		if got := ProblemType(code); got != want {
			t.Errorf("ProblemType(%s) = %q, want %q", code, got, want)
		}
	}
}

func TestFail_WritesProblem(t *testing.T) {
	rec, p := serveFail(t, ErrHabitNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, ProblemContentType) {
		t.Errorf("Content-Type = %q, want %s", ct, ProblemContentType)
	}
	if p.Type != ProblemType(CodeNotFound) || p.Title != "Not Found" || p.Status != 404 {
		t.Errorf("problem = %+v", p)
	}
	if p.Detail != "Habit not found" || p.Instance != "/habits/42" || p.Code != CodeNotFound {
		t.Errorf("problem = %+v", p)
	}
	if _, err := uuid.Parse(p.CorrelationID); err != nil {
		t.Errorf("correlation_id %q is not a uuid: %v", p.CorrelationID, err)
	}
	if _, err := time.Parse(time.RFC3339, p.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", p.Timestamp, err)
	}
}

func TestNewProblem_Title(t *testing.T) {
	tests := []struct {
		err  *AppError
		want string
	}{
		{ErrDuplicateCheckin, "Duplicate Checkin"},
		{ErrInvalidCredentials, "Invalid Credentials"},
		{ErrUsernameTaken, "Username Taken"},
		{ErrCheckinNotFound, "Not Found"},
		{ErrUnauthorized, "Unauthorized"},
		{ErrNotAuthenticated, "Forbidden"},
		{ErrRateLimited, "Too Many Requests"},
		{Validation("bad input"), "Unprocessable Entity"},
		{Internal(errors.New("boom")), "Internal Server Error"},
	}
	for _, tt := range tests {
		if got := NewProblem(tt.err, "/", time.Now()).Title; got != tt.want {
			t.Errorf("title for %s = %q, want %q", tt.err.Code, got, tt.want)
		}
	}
}

func TestFail_CorrelationIDIsFresh(t *testing.T) {
	_, a := serveFail(t, ErrHabitNotFound)
	_, b := serveFail(t, ErrHabitNotFound)
	if a.CorrelationID == b.CorrelationID {
		t.Errorf("correlation ids repeat: %s", a.CorrelationID)
	}
}

func TestFail_UnauthorizedChallenge(t *testing.T) {
	rec, _ := serveFail(t, ErrUnauthorized)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", got)
	}

	rec, _ = serveFail(t, ErrNotAuthenticated)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "" {
		t.Errorf("WWW-Authenticate = %q, want empty", got)
	}
}

func TestFail_InternalHidesCause(t *testing.T) {
	rec, p := serveFail(t, errors.New("dial tcp 10.0.0.1:3306: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if p.Code != CodeInternal {
		t.Errorf("code = %s, want %s", p.Code, CodeInternal)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.1") {
		t.Errorf("response leaks cause: %s", rec.Body.String())
	}
}

func TestFail_ValidationFields(t *testing.T) {
	rec, p := serveFail(t, Validation("Request validation failed", FieldError{Field: "name", Message: "field is required"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if len(p.Errors) != 1 || p.Errors[0].Field != "name" {
		t.Errorf("errors = %+v, want one error for name", p.Errors)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("secret stack detail") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret stack detail") {
		t.Errorf("panic value leaked: %s", rec.Body.String())
	}
}

type bindTarget struct {
	Name        string `json:"name" binding:"required,max=5"`
	Periodicity int    `json:"periodicity" binding:"required,gt=0"`
	Day         string `json:"day" binding:"omitempty,datetime=2006-01-02"`
}

func TestBindingError(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"missing fields", `{}`, []string{"name", "periodicity"}},
		{"too long", `{"name":"abcdefg","periodicity":1}`, []string{"name"}},
		{"bad date", `{"name":"a","periodicity":1,"day":"2024-13-01"}`, []string{"day"}},
		{"wrong type", `{"name":"a","periodicity":"daily"}`, []string{"periodicity"}},
		{"malformed", `{"name":`, nil},
		{"empty body", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var target bindTarget
			err := c.ShouldBindJSON(&target)
			if err == nil {
				t.Fatal("ShouldBindJSON() succeeded, want error")
			}

			appErr := BindingError(err)
			if appErr.Status != http.StatusUnprocessableEntity || appErr.Code != CodeValidation {
				t.Fatalf("BindingError() = %d %s, want 422 VALIDATION_ERROR", appErr.Status, appErr.Code)
			}
			var got []string
			for _, f := range appErr.Fields {
				got = append(got, f.Field)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("fields = %v, want %v", got, tt.wantFields)
			}
		})
	}
}
