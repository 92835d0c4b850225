package service

import (
	"context"
	"errors"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionGuard 将 bearer 令牌解析为用户，只读，不修改任何数据
type SessionGuard struct {
	users  UserStore
	tokens *util.TokenCodec
}

func NewSessionGuard(users UserStore, tokens *util.TokenCodec) *SessionGuard {
	return &SessionGuard{users: users, tokens: tokens}
}

// Resolve 空凭证返回 ErrNotAuthenticated (403)；无效、过期或用户已不存在返回 ErrUnauthorized (401)
func (g *SessionGuard) Resolve(ctx context.Context, credential string) (*model.User, error) {
	if credential == "" {
		return nil, util.ErrNotAuthenticated
	}

	subject, err := g.tokens.Verify(credential)
	if err != nil {
		logger.Log.Debug("Rejected session token", zap.Bool("expired", errors.Is(err, util.ErrTokenExpired)))
		return nil, util.ErrUnauthorized
	}

	user, err := g.users.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Info("Token subject no longer exists", zap.String("username", util.MaskUsername(subject)))
			return nil, util.ErrUnauthorized
		}
		return nil, util.Internal(err)
	}
	return user, nil
}
