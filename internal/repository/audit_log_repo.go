package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ==================== 仓储接口 ====================

// AuditLogRepository 审计日志仓储接口
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, int64, error)
	Stats(ctx context.Context, since time.Time) ([]AuditStats, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditLogFilter 列表筛选
type AuditLogFilter struct {
	Resource string
	Action   string
	Email    string
	Status   string
	Page     int
	PageSize int
}

// AuditStats 按资源统计
type AuditStats struct {
	Resource     string `json:"resource"`
	TotalCount   int64  `json:"total_count"`
	SuccessCount int64  `json:"success_count"`
	FailedCount  int64  `json:"failed_count"`
}

// ==================== 仓储实现 ====================

type auditLogRepo struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建审计日志仓储
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepo) List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 50
	}

	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.AuditLog
	err := query.Order("id DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&logs).Error
	return logs, total, err
}

func (r *auditLogRepo) Stats(ctx context.Context, since time.Time) ([]AuditStats, error) {
	var stats []AuditStats

	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	err := query.Select(`
		resource,
		COUNT(*) as total_count,
		SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END) as success_count,
		SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) as failed_count
	`).
		Group("resource").
		Order("resource ASC").
		Scan(&stats).Error

	return stats, err
}

// DeleteBefore 物理删除 cutoff 之前的日志
func (r *auditLogRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.AuditLog{})
	return res.RowsAffected, res.Error
}
