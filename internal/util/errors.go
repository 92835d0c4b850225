package util

import (
	"errors"
	"net/http"
)

// ErrorCode 机器可读的错误码，客户端可据此分支处理
type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeNotAuthenticated   ErrorCode = "NOT_AUTHENTICATED"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeDuplicateCheckin   ErrorCode = "DUPLICATE_CHECKIN"
	CodeUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	CodeRateLimited        ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeMethodNotAllowed   ErrorCode = "METHOD_NOT_ALLOWED"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError 业务错误，在检测点返回，在边界处统一转换为 problem 响应
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is 按错误码匹配
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return false
}

func NewAppError(code ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// Validation 创建带字段明细的校验错误
func Validation(message string, fields ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Fields:  fields,
	}
}

// Internal 包装意外错误；Cause 只用于日志，不会出现在响应中
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

var (
	ErrInvalidCredentials = NewAppError(CodeInvalidCredentials, http.StatusUnauthorized, "Invalid username or password")
	ErrUnauthorized       = NewAppError(CodeUnauthorized, http.StatusUnauthorized, "Could not validate credentials")
	ErrNotAuthenticated   = NewAppError(CodeNotAuthenticated, http.StatusForbidden, "Not authenticated")
	ErrHabitNotFound      = NewAppError(CodeNotFound, http.StatusNotFound, "Habit not found")
	ErrCheckinNotFound    = NewAppError(CodeNotFound, http.StatusNotFound, "Checkin not found")
	ErrRouteNotFound      = NewAppError(CodeNotFound, http.StatusNotFound, "Resource not found")
	ErrDuplicateCheckin   = NewAppError(CodeDuplicateCheckin, http.StatusBadRequest, "Checkin already exists for this date")
	ErrUsernameTaken      = NewAppError(CodeUsernameTaken, http.StatusConflict, "Username already registered")
	ErrRateLimited        = NewAppError(CodeRateLimited, http.StatusTooManyRequests, "Too many requests, please retry later")
	ErrMethodNotAllowed   = NewAppError(CodeMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed")
)

// AsAppError 将任意错误归一化为 AppError，未知错误一律视为内部错误
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
