package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
)

// AuditService 管理员写操作审计
// 记录失败只打日志，不影响业务结果
type AuditService struct {
	repo repository.AuditLogRepository
}

func NewAuditService(repo repository.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record 记录一次操作，opErr 为业务结果
func (s *AuditService) Record(ctx context.Context, who Actor, action, resource, resourceID string, payload any, opErr error) {
	if s == nil || s.repo == nil {
		return
	}

	entry := &model.AuditLog{
		SessionID:  who.SessionID,
		Email:      who.Email,
		RequestID:  who.RequestID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Status:     model.AuditStatusSuccess,
	}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			entry.Payload = datatypes.JSON(b)
		}
	}
	if opErr != nil {
		entry.Status = model.AuditStatusFailed
		entry.ErrorMsg = truncate(opErr.Error(), 1024)
	}

	// 请求被取消时仍需落库
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.L().Warn("审计日志写入失败",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Error(err))
	}
}

func (s *AuditService) List(ctx context.Context, filter repository.AuditLogFilter) ([]model.AuditLog, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *AuditService) Stats(ctx context.Context, since time.Time) ([]repository.AuditStats, error) {
	return s.repo.Stats(ctx, since)
}

// Purge 删除保留期之前的日志
func (s *AuditService) Purge(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	return s.repo.DeleteBefore(ctx, time.Now().AddDate(0, 0, -retentionDays))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
