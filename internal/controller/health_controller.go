package controller

import (
	"habit_tracker/pkg/database"
	"habit_tracker/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// HealthResponse 健康检查结果
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// @Summary 健康检查
// @Description 检查服务与数据库连接状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	dbStatus := "connected"
	// 检查数据库连接
	if err := database.Ping(c.DB); err != nil {
		logger.Log.Warn("Database health check failed", zap.Error(err))
		dbStatus = "disconnected"
	}

	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: dbStatus})
}
