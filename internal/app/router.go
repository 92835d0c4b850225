package app

import (
	"habit_tracker/docs"
	"habit_tracker/internal/config"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/monitoring"
	"habit_tracker/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.NoRoute(util.NoRoute)
	router.NoMethod(util.NoMethod)

	// 接口文档只在调试模式下开放
	if cfg.Server.Mode == gin.DebugMode {
		docs.SwaggerInfo.BasePath = "/"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	}

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(a.services.guard))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerHabitRoutes(authGroup, c)
		a.registerCheckinRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)
	router.POST("/register", c.auth.Register)
	// 登录接口单独使用更严格的限流
	router.POST("/login", security.RateLimiter(a.limiters.login, "login"), c.auth.Login)
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/me", c.auth.Me)
	rg.GET("/stats", c.stats.GetStats)
}

func (a *App) registerHabitRoutes(rg *gin.RouterGroup, c *controllers) {
	habits := rg.Group("/habits")
	{
		habits.POST("", c.habit.CreateHabit)
		habits.GET("", c.habit.ListHabits)
		habits.GET("/:id", c.habit.GetHabit)
		habits.GET("/:id/detailed", c.habit.GetHabitDetailed)
		habits.GET("/:id/stats", c.stats.GetHabitStats)
		habits.PUT("/:id", c.habit.UpdateHabit)
		habits.DELETE("/:id", c.habit.DeleteHabit)
	}
}

func (a *App) registerCheckinRoutes(rg *gin.RouterGroup, c *controllers) {
	checkins := rg.Group("/checkins")
	{
		checkins.POST("", c.checkin.CreateCheckin)
		checkins.GET("", c.checkin.ListCheckins)
		checkins.GET("/:id", c.checkin.GetCheckin)
		checkins.PUT("/:id", c.checkin.UpdateCheckin)
		checkins.DELETE("/:id", c.checkin.DeleteCheckin)
	}
}
