package model

import (
	"time"
)

// Session 管理员登录会话
// 后端 token 只保存在服务端，客户端持有指向会话的 access token
type Session struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;index" json:"email"`
	BackendToken string    `gorm:"type:text" json:"-"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "admin_sessions"
}

// Expired 相对 now 是否已过期
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
