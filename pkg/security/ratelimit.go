package security

import (
	"context"
	"fmt"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/logger"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter 判断某个 key 当前请求是否放行，拒绝时给出建议的重试等待时间
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
	SetLimit(maxRequests int, window time.Duration)
}

// visitor 包装限流器和最后活跃时间，用于定期清理
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter 单实例内存令牌桶，按 key 限流，自动清理过期条目
type MemoryLimiter struct {
	mu          sync.Mutex
	store       map[string]*visitor
	maxRequests int
	window      time.Duration
	stop        chan struct{}
	once        sync.Once
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		store:       make(map[string]*visitor),
		maxRequests: maxRequests,
		window:      window,
		stop:        make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *MemoryLimiter) every() rate.Limit {
	return rate.Every(l.window / time.Duration(l.maxRequests))
}

func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			expiry := l.window * 3
			if expiry < time.Minute {
				expiry = time.Minute
			}
			for key, v := range l.store {
				if time.Since(v.lastSeen) > expiry {
					delete(l.store, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	v, exists := l.store[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.every(), l.maxRequests)}
		l.store[key] = v
	}
	v.lastSeen = time.Now()
	retry := l.window / time.Duration(l.maxRequests)
	l.mu.Unlock()

	if !v.limiter.Allow() {
		return false, retry, nil
	}
	return true, 0, nil
}

// SetLimit 配置热加载时调整，已有的 key 立即生效
func (l *MemoryLimiter) SetLimit(maxRequests int, window time.Duration) {
	if maxRequests <= 0 || window <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxRequests = maxRequests
	l.window = window
	for _, v := range l.store {
		v.limiter.SetLimit(l.every())
		v.limiter.SetBurst(maxRequests)
	}
}

func (l *MemoryLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

// RedisLimiter 多实例共享的固定窗口计数
type RedisLimiter struct {
	rdb         *redis.Client
	prefix      string
	mu          sync.RWMutex
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, prefix string, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:         rdb,
		prefix:      prefix,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	l.mu.RLock()
	maxRequests, window := l.maxRequests, l.window
	l.mu.RUnlock()

	now := l.now()
	slot := now.UnixNano() / int64(window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, err
	}

	if incr.Val() > int64(maxRequests) {
		windowEnd := time.Unix(0, (slot+1)*int64(window))
		return false, windowEnd.Sub(now), nil
	}
	return true, 0, nil
}

func (l *RedisLimiter) SetLimit(maxRequests int, window time.Duration) {
	if maxRequests <= 0 || window <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxRequests = maxRequests
	l.window = window
}

// RateLimiter 限流中间件 按 scope + 客户端 IP 限流；限流后端故障时放行
func RateLimiter(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, retry, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Log.Warn("Rate limiter unavailable, allowing request", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			util.Fail(c, util.ErrRateLimited)
			return
		}

		c.Next()
	}
}
