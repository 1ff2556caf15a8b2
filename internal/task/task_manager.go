package task

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
)

// ==================== TaskManager 本地维护任务管理器 ====================

// SessionCleaner 清理过期会话
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// AuditPurger 清理过期审计日志
type AuditPurger interface {
	Purge(ctx context.Context, retentionDays int) (int64, error)
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Sessions SessionCleaner
	Audit    AuditPurger
}

// TaskManagerConfig 任务管理器配置
// cron 表达式带秒字段
type TaskManagerConfig struct {
	SessionCleanupCron string
	AuditCleanupCron   string
	AuditRetentionDays int
	JobTimeout         time.Duration
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		SessionCleanupCron: "0 */10 * * * *",
		AuditCleanupCron:   "0 30 3 * * *",
		AuditRetentionDays: 90,
		JobTimeout:         time.Minute,
	}
}

// TaskManager 统一管理会话清理与审计日志清理
type TaskManager struct {
	deps *TaskManagerDeps
	cfg  *TaskManagerConfig
	cron *cron.Cron

	mu      sync.Mutex
	lastRun map[string]JobResult
}

// JobResult 最近一次执行结果
type JobResult struct {
	At      time.Time `json:"at"`
	Removed int64     `json:"removed"`
	Error   string    `json:"error,omitempty"`
}

const (
	JobSessionCleanup = "session_cleanup"
	JobAuditPurge     = "audit_purge"
)

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = time.Minute
	}
	return &TaskManager{
		deps:    deps,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
		lastRun: make(map[string]JobResult),
	}
}

// ==================== 生命周期管理 ====================

// Start 注册并启动定时任务，cron 表达式错误时返回
func (tm *TaskManager) Start() error {
	if tm.deps.Sessions != nil && tm.cfg.SessionCleanupCron != "" {
		if _, err := tm.cron.AddFunc(tm.cfg.SessionCleanupCron, tm.scheduled(tm.TriggerSessionCleanup)); err != nil {
			return err
		}
	}
	// retention <= 0 表示永久保留
	if tm.deps.Audit != nil && tm.cfg.AuditCleanupCron != "" && tm.cfg.AuditRetentionDays > 0 {
		if _, err := tm.cron.AddFunc(tm.cfg.AuditCleanupCron, tm.scheduled(tm.TriggerAuditPurge)); err != nil {
			return err
		}
	}

	tm.cron.Start()
	logger.L().Info("[TaskManager] 维护任务已启动",
		zap.String("session_cron", tm.cfg.SessionCleanupCron),
		zap.String("audit_cron", tm.cfg.AuditCleanupCron),
		zap.Int("audit_retention_days", tm.cfg.AuditRetentionDays))
	return nil
}

// Stop 停止调度并等待正在执行的任务
func (tm *TaskManager) Stop() {
	ctx := tm.cron.Stop()
	<-ctx.Done()
	logger.L().Info("[TaskManager] 维护任务已停止")
}

func (tm *TaskManager) scheduled(job func(ctx context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), tm.cfg.JobTimeout)
		defer cancel()
		_, _ = job(ctx)
	}
}

// ==================== 手动触发接口 ====================

// TriggerSessionCleanup 立即清理过期会话
func (tm *TaskManager) TriggerSessionCleanup(ctx context.Context) (int64, error) {
	if tm.deps.Sessions == nil {
		return 0, ErrTaskDisabled
	}
	n, err := tm.deps.Sessions.CleanupExpired(ctx)
	tm.record(JobSessionCleanup, n, err)
	return n, err
}

// TriggerAuditPurge 立即清理超出保留期的审计日志
func (tm *TaskManager) TriggerAuditPurge(ctx context.Context) (int64, error) {
	if tm.deps.Audit == nil || tm.cfg.AuditRetentionDays <= 0 {
		return 0, ErrTaskDisabled
	}
	n, err := tm.deps.Audit.Purge(ctx, tm.cfg.AuditRetentionDays)
	tm.record(JobAuditPurge, n, err)
	return n, err
}

func (tm *TaskManager) record(job string, removed int64, err error) {
	res := JobResult{At: time.Now(), Removed: removed}
	if err != nil {
		res.Error = err.Error()
		logger.L().Warn("[TaskManager] 任务执行失败", zap.String("job", job), zap.Error(err))
	} else if removed > 0 {
		logger.L().Info("[TaskManager] 任务完成", zap.String("job", job), zap.Int64("removed", removed))
	}

	tm.mu.Lock()
	tm.lastRun[job] = res
	tm.mu.Unlock()
}

// ==================== 状态查询 ====================

// Status 各任务最近一次执行结果
func (tm *TaskManager) Status() map[string]JobResult {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	out := make(map[string]JobResult, len(tm.lastRun))
	for k, v := range tm.lastRun {
		out[k] = v
	}
	return out
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
)
