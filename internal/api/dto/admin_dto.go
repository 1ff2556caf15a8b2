package dto

import (
	"time"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ==================== 登录 ====================

// LoginRequest 登录请求，格式校验在业务层完成
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Session     *SessionInfo `json:"session"`
}

// SessionInfo 当前会话，不含后端 token
type SessionInfo struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// NewSessionInfo 会话转视图
func NewSessionInfo(s *model.Session) *SessionInfo {
	if s == nil {
		return nil
	}
	return &SessionInfo{
		ID:         s.ID,
		Email:      s.Email,
		ExpiresAt:  s.ExpiresAt,
		LastSeenAt: s.LastSeenAt,
	}
}

// ==================== 审计日志 ====================

// AuditLogQuery 审计日志查询
type AuditLogQuery struct {
	Resource string `form:"resource"`
	Action   string `form:"action"`
	Email    string `form:"email"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=50"`
}

// AuditLogListResp 审计日志列表
type AuditLogListResp struct {
	Total    int64            `json:"total"`
	List     []model.AuditLog `json:"list"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
