package util

import (
	"net/http"
	"strings"
	"time"

	"habit_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ProblemContentType = "application/problem+json"
	ProblemTypeBase    = "https://habittracker.com/errors/"
)

// Problem RFC 7807 错误响应体
type Problem struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Status        int          `json:"status"`
	Detail        string       `json:"detail"`
	Instance      string       `json:"instance"`
	CorrelationID string       `json:"correlation_id"`
	Timestamp     string       `json:"timestamp"`
	Code          ErrorCode    `json:"code,omitempty"`
	Errors        []FieldError `json:"errors,omitempty"`
}

// NewProblem 由 AppError 构造 problem，每次调用生成新的 correlation id
func NewProblem(appErr *AppError, instance string, now time.Time) Problem {
	return Problem{
		Type:          ProblemType(appErr.Code),
		Title:         problemTitle(appErr),
		Status:        appErr.Status,
		Detail:        appErr.Message,
		Instance:      instance,
		CorrelationID: uuid.NewString(),
		Timestamp:     now.UTC().Format(time.RFC3339),
		Code:          appErr.Code,
		Errors:        appErr.Fields,
	}
}

// ProblemType NOT_FOUND -> https://habittracker.com/errors/not-found
func ProblemType(code ErrorCode) string {
	return ProblemTypeBase + strings.ReplaceAll(strings.ToLower(string(code)), "_", "-")
}

// 业务错误码的标题由错误码生成，其余沿用 HTTP 状态文本
var codeTitled = map[ErrorCode]bool{
	CodeInvalidCredentials: true,
	CodeNotFound:           true,
	CodeDuplicateCheckin:   true,
	CodeUsernameTaken:      true,
}

func problemTitle(appErr *AppError) string {
	if codeTitled[appErr.Code] {
		return codeTitle(appErr.Code)
	}
	return statusTitle(appErr.Status)
}

// codeTitle DUPLICATE_CHECKIN -> Duplicate Checkin
func codeTitle(code ErrorCode) string {
	words := strings.Split(strings.ToLower(string(code)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func statusTitle(status int) string {
	if title := http.StatusText(status); title != "" {
		return title
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Fail 把错误写为 problem 响应并中止后续 handler
func Fail(c *gin.Context, err error) {
	appErr := AsAppError(err)
	problem := NewProblem(appErr, c.Request.URL.Path, time.Now())

	if appErr.Status >= http.StatusInternalServerError {
		logger.Log.Error("Internal server error",
			zap.String("correlation_id", problem.CorrelationID),
			zap.String("path", problem.Instance),
			zap.Error(appErr.Cause),
		)
	}

	if appErr.Status == http.StatusUnauthorized && appErr.Code == CodeUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(appErr.Status, problem)
}

// NoRoute 未匹配路由
func NoRoute(c *gin.Context) {
	Fail(c, ErrRouteNotFound)
}

// NoMethod 方法不被允许
func NoMethod(c *gin.Context) {
	Fail(c, ErrMethodNotAllowed)
}

// Recovery 捕获 panic 并返回 500 problem，不泄露任何堆栈
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		Fail(c, Internal(nil))
	})
}
