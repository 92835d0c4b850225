package middleware

import (
	"context"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionResolver 由 service.SessionGuard 实现
type SessionResolver interface {
	Resolve(ctx context.Context, credential string) (*model.User, error)
}

// AuthMiddleware 缺少 bearer 凭证返回 403，凭证无效或过期返回 401
func AuthMiddleware(guard SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := util.ParseBearer(c.GetHeader("Authorization"))

		user, err := guard.Resolve(c.Request.Context(), credential)
		if err != nil {
			util.Fail(c, err)
			return
		}

		util.SetUserInContext(c, user)
		c.Next()
	}
}
