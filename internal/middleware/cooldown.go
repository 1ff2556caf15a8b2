package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== CooldownLimiter 冷却限流器 ====================

// CooldownLimiter 同一 key 在冷却间隔内只放行一次
// 用于登录、重置站点设置等不应被连续触发的操作
type CooldownLimiter struct {
	locks sync.Map // key -> *lockEntry
	now   func() time.Time
}

type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// NewCooldownLimiter 创建限流器
func NewCooldownLimiter() *CooldownLimiter {
	return &CooldownLimiter{now: time.Now}
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查并在放行时记录执行时间
func (r *CooldownLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := r.now()
	if elapsed := now.Sub(entry.lastTime); elapsed < interval {
		return CheckResult{Allowed: false, RetryAfter: interval - elapsed}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 重置指定 key
func (r *CooldownLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// ==================== Gin 中间件 ====================

// Cooldown 按 操作 + 客户端 IP 限流
//
// 使用示例:
//
//	admin.POST("/login", middleware.Cooldown(limiter, "login", 2*time.Second), ctl.Login)
func Cooldown(limiter *CooldownLimiter, action string, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", action, c.ClientIP())

		result := limiter.Check(key, interval)
		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", retrySeconds(result.RetryAfter)))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": formatRetryMessage(result.RetryAfter),
				"data": gin.H{
					"retry_after": retrySeconds(result.RetryAfter),
					"action":      action,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ==================== 辅助函数 ====================

func retrySeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := retrySeconds(d)

	if seconds < 60 {
		return fmt.Sprintf("操作过于频繁，请 %d 秒后重试", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60

	if remainingSeconds == 0 {
		return fmt.Sprintf("操作过于频繁，请 %d 分钟后重试", minutes)
	}

	return fmt.Sprintf("操作过于频繁，请 %d 分 %d 秒后重试", minutes, remainingSeconds)
}
