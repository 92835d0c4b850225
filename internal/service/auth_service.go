package service

import (
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/logger"
	"habit_tracker/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenResponse 登录成功的响应
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthService struct {
	users     UserStore
	hasher    *util.PasswordHasher
	tokens    *util.TokenCodec
	dummyHash string
}

func NewAuthService(users UserStore, hasher *util.PasswordHasher, tokens *util.TokenCodec) (*AuthService, error) {
	dummy, err := hasher.DummyHash()
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Authenticate 校验用户名密码；用户不存在和密码错误返回同一个错误
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.Internal(err)
		}
		// 用户不存在时也跑一次同等开销的校验，避免通过耗时判断用户名是否存在
		s.hasher.Check(password, s.dummyHash)
		logger.Log.Warn("Failed login attempt for unknown user", zap.String("username", util.MaskUsername(username)))
		monitoring.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, util.ErrInvalidCredentials
	}

	if !s.hasher.Check(password, user.Password) {
		logger.Log.Warn("Failed login attempt", zap.String("username", util.MaskUsername(username)))
		monitoring.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, util.ErrInvalidCredentials
	}

	logger.Log.Info("Successful login", zap.Uint("user_id", user.ID))
	monitoring.LoginAttempts.WithLabelValues("success").Inc()
	return user, nil
}

// Login 认证成功后以用户名为 subject 签发令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("issue token: %w", err))
	}

	return &TokenResponse{AccessToken: token, TokenType: util.TokenTypeBearer}, nil
}
