package controller

import (
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser 取出会话守卫写入的用户；缺失时已写好 401 响应
func currentUser(ctx *gin.Context) (*model.User, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Fail(ctx, util.ErrUnauthorized)
		return nil, false
	}
	return user, true
}

// pathID 非法 id 与不存在的 id 返回同样的 404
func pathID(ctx *gin.Context, notFound *util.AppError) (uint, bool) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.Fail(ctx, notFound)
		return 0, false
	}
	return id, true
}
