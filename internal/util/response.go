package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 删除等操作的简单响应
type MessageResponse struct {
	Message string `json:"message"`
}

// 成功响应直接返回实体本身，错误响应统一走 Fail

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
