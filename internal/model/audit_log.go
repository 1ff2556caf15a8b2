package model

import (
	"gorm.io/datatypes"
)

// AuditLog 管理员写操作审计
type AuditLog struct {
	BaseModel

	// 关联
	SessionID string `gorm:"size:64;index;comment:会话ID"`
	Email     string `gorm:"size:255;index;comment:管理员邮箱"`
	RequestID string `gorm:"size:64;comment:请求ID"`

	// 操作信息
	Action     string `gorm:"size:32;index;comment:操作(create/update/delete/status...)"`
	Resource   string `gorm:"size:64;index;comment:资源类型"`
	ResourceID string `gorm:"size:128;comment:资源ID"`

	Payload datatypes.JSON `gorm:"comment:请求摘要"`

	// 结果
	Status   string `gorm:"size:32;index;default:success;comment:状态(success/failed)"`
	ErrorMsg string `gorm:"size:1024;comment:错误信息"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// ==================== 操作常量 ====================

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionStatus = "status"
	AuditActionReset  = "reset"
	AuditActionLogin  = "login"
	AuditActionLogout = "logout"
)

// ==================== 状态常量 ====================

const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)
