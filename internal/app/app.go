package app

import (
	"context"
	"fmt"
	"habit_tracker/internal/config"
	"habit_tracker/internal/controller"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/database"
	"habit_tracker/pkg/logger"
	"habit_tracker/pkg/monitoring"
	"habit_tracker/pkg/security"
	"habit_tracker/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	limiters        *limiters
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	habit   *repository.HabitRepository
	checkin *repository.CheckinRepository
}

type services struct {
	auth    *service.AuthService
	user    *service.UserService
	guard   *service.SessionGuard
	habit   *service.HabitService
	checkin *service.CheckinService
	stats   *service.StatsService
}

type controllers struct {
	auth    *controller.AuthController
	habit   *controller.HabitController
	checkin *controller.CheckinController
	stats   *controller.StatsController
	health  *controller.HealthController
}

// limiters general 作用于全部请求，login 只作用于登录接口
type limiters struct {
	general security.Limiter
	login   security.Limiter
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新时调用，依次执行已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		habit:   repository.NewHabitRepository(db),
		checkin: repository.NewCheckinRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	hasher := util.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := util.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.ExpireTime)

	auth, err := service.NewAuthService(repos.user, hasher, tokens)
	if err != nil {
		return nil, fmt.Errorf("init auth service: %w", err)
	}

	return &services{
		auth:    auth,
		user:    service.NewUserService(repos.user, hasher),
		guard:   service.NewSessionGuard(repos.user, tokens),
		habit:   service.NewHabitService(repos.habit),
		checkin: service.NewCheckinService(repos.habit, repos.checkin),
		stats:   service.NewStatsService(repos.habit, repos.checkin),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth, s.user),
		habit:   controller.NewHabitController(s.habit),
		checkin: controller.NewCheckinController(s.checkin),
		stats:   controller.NewStatsController(s.stats),
		health:  controller.NewHealthController(db),
	}
}

// initLimiters 启用 redis 时限流计数在多个实例间共享，否则使用进程内计数
func (a *App) initLimiters(cfg *config.Config, rdb *redis.Client) *limiters {
	window := cfg.RateLimit.Window()
	if rdb != nil {
		return &limiters{
			general: security.NewRedisLimiter(rdb, "ratelimit:api", cfg.RateLimit.MaxRequests, window),
			login:   security.NewRedisLimiter(rdb, "ratelimit:login", cfg.RateLimit.LoginMaxRequests, window),
		}
	}
	return &limiters{
		general: security.NewMemoryLimiter(cfg.RateLimit.MaxRequests, window),
		login:   security.NewMemoryLimiter(cfg.RateLimit.LoginMaxRequests, window),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(util.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(security.RateLimiter(a.limiters.general, "api"))
}

// New 组装路由与依赖；db 需已完成迁移，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.services = services
	app.limiters = app.initLimiters(cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(c *config.Config) {
		window := c.RateLimit.Window()
		app.limiters.general.SetLimit(c.RateLimit.MaxRequests, window)
		app.limiters.login.SetLimit(c.RateLimit.LoginMaxRequests, window)
		logger.Log.Info("Rate limits updated",
			zap.Int("max_requests", c.RateLimit.MaxRequests),
			zap.Int("login_max_requests", c.RateLimit.LoginMaxRequests),
			zap.Duration("window", window),
		)
	})

	return app, nil
}

// NewApp 按配置初始化日志、数据库、redis 与追踪，并创建引导用户
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("initialize redis: %w", err)
		}
	}

	app, err := New(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	if err := app.EnsureBootstrapUser(context.Background()); err != nil {
		return nil, err
	}

	return app, nil
}

// EnsureBootstrapUser 配置了引导用户时确保其存在；已存在则保持原密码不变
func (a *App) EnsureBootstrapUser(ctx context.Context) error {
	username := a.Config.Auth.BootstrapUsername
	password := a.Config.Auth.BootstrapPassword
	if username == "" || password == "" {
		return nil
	}

	_, created, err := a.services.user.EnsureUser(ctx, username, password)
	if err != nil {
		return fmt.Errorf("ensure bootstrap user: %w", err)
	}
	if created {
		logger.Log.Info("Bootstrap user created", zap.String("username", util.MaskUsername(username)))
	}
	return nil
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后在 5 秒内优雅退出
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		a.Close()
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
	return nil
}

// Close 释放限流器、追踪与连接
func (a *App) Close() {
	if a.limiters != nil {
		for _, l := range []security.Limiter{a.limiters.general, a.limiters.login} {
			if m, ok := l.(*security.MemoryLimiter); ok {
				m.Close()
			}
		}
	}

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Warn("Failed to close redis", zap.Error(err))
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
