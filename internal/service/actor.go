package service

import (
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// Actor 发起操作的管理员
// Token 为后端签发的 token，由控制器从会话中取出显式传入
type Actor struct {
	SessionID string
	Email     string
	Token     string
	RequestID string
}

// ActorFromSession 会话转为操作者
func ActorFromSession(s *model.Session, requestID string) Actor {
	if s == nil {
		return Actor{RequestID: requestID}
	}
	return Actor{
		SessionID: s.ID,
		Email:     s.Email,
		Token:     s.BackendToken,
		RequestID: requestID,
	}
}
