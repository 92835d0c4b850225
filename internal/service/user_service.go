package service

import (
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/logger"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserProfile /users/me 的响应，用户名做脱敏
// swagger:model UserProfile
type UserProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserService 处理用户注册与初始化
type UserService struct {
	users  UserStore
	hasher *util.PasswordHasher
}

// NewUserService 创建一个新的用户服务实例
func NewUserService(users UserStore, hasher *util.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register 创建新用户，用户名已存在返回 ErrUsernameTaken
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &model.User{Username: username, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrUsernameTaken
		}
		return nil, util.Internal(fmt.Errorf("create user: %w", err))
	}

	logger.Log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", util.MaskUsername(username)))
	return user, nil
}

// EnsureUser 用户不存在时创建，用于启动时的初始账号
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (*model.User, bool, error) {
	username = strings.TrimSpace(username)
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user, err := s.Register(ctx, username, password)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) Profile(user *model.User) UserProfile {
	return UserProfile{ID: user.ID, Username: util.DisplayUsername(user.Username)}
}

func validateCredentials(username, password string) error {
	var fields []util.FieldError
	if n := utf8.RuneCountInString(username); n < util.UsernameMinLength || n > util.UsernameMaxLength {
		fields = append(fields, util.FieldError{
			Field:   "username",
			Message: fmt.Sprintf("must be between %d and %d characters", util.UsernameMinLength, util.UsernameMaxLength),
		})
	}
	if utf8.RuneCountInString(password) < util.PasswordMinLength || len(password) > util.PasswordMaxBytes {
		fields = append(fields, util.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters and at most %d bytes", util.PasswordMinLength, util.PasswordMaxBytes),
		})
	}
	if len(fields) > 0 {
		return util.Validation("Request validation failed", fields...)
	}
	return nil
}
