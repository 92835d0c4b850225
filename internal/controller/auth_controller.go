package controller

import (
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterResponse 注册成功返回的用户信息
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Register godoc
// @Summary 注册新用户
// @Description 使用用户名和密码注册新用户
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} RegisterResponse "创建成功"
// @Failure 409 {object} util.Problem "用户名已被注册"
// @Failure 422 {object} util.Problem "请求参数错误"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.BindingError(err))
		return
	}

	user, err := c.UserService.Register(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Created(ctx, RegisterResponse{ID: user.ID, Username: util.EscapeText(user.Username)})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回 bearer 令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} service.TokenResponse "成功"
// @Failure 401 {object} util.Problem "用户名或密码错误"
// @Failure 422 {object} util.Problem "请求参数错误"
// @Failure 429 {object} util.Problem "请求过于频繁"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.BindingError(err))
		return
	}

	token, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, token)
}

// Me godoc
// @Summary 获取当前用户
// @Description 返回当前已认证用户，用户名做脱敏处理
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} service.UserProfile "Success"
// @Failure 401 {object} util.Problem "Unauthorized"
// @Failure 403 {object} util.Problem "Not authenticated"
// @Router /users/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Fail(ctx, util.ErrUnauthorized)
		return
	}

	util.Success(ctx, c.UserService.Profile(user))
}
