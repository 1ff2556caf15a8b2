package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// ErrSessionExpired 会话过期或已登出
var ErrSessionExpired = errors.New("session expired, please log in again")

// AuthService 管理员登录会话
// 会话是后端 token 的唯一持有者，登录写入、登出删除
type AuthService struct {
	authRepo repository.AuthRepository
	sessions repository.SessionRepository
	audit    *AuditService
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService 工厂方法
// ttl: 后端 token 不带 exp 时的会话时长
func NewAuthService(authRepo repository.AuthRepository, sessions repository.SessionRepository, audit *AuditService, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		authRepo: authRepo,
		sessions: sessions,
		audit:    audit,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login 校验凭据格式，调用后端登录并创建会话
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.TrimSpace(email)

	// 1. 本地校验，不合法不发请求
	if !validation.ValidateEmail(email) {
		return nil, invalid("email", "Please enter a valid email address")
	}
	if !validation.ValidatePassword(password) {
		return nil, invalid("password", "Password must be at least %d characters", validation.MinPasswordLength)
	}

	// 2. 后端登录
	token, err := s.authRepo.Login(ctx, email, password)
	if err != nil {
		s.audit.Record(ctx, Actor{Email: email}, model.AuditActionLogin, "session", "", nil, err)
		return nil, err
	}

	// 3. 写会话
	now := s.now()
	sess := &model.Session{
		ID:           uuid.NewString(),
		Email:        email,
		BackendToken: token,
		ExpiresAt:    s.expiryFor(token, now),
		LastSeenAt:   now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, Actor{SessionID: sess.ID, Email: email}, model.AuditActionLogin, "session", sess.ID, nil, nil)
	logger.L().Info("管理员登录", zap.String("email", email), zap.Time("expires_at", sess.ExpiresAt))
	return sess, nil
}

// Resolve 按会话 ID 取有效会话
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if sess.Expired(now) {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, ErrSessionExpired
	}

	if err := s.sessions.Touch(ctx, sess.ID, now); err != nil {
		logger.L().Warn("更新会话活跃时间失败", zap.String("session", sess.ID), zap.Error(err))
	}
	return sess, nil
}

// Logout 删除会话，重复登出视为成功
func (s *AuthService) Logout(ctx context.Context, who Actor) error {
	err := s.sessions.Delete(ctx, who.SessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		err = nil
	}
	s.audit.Record(ctx, who, model.AuditActionLogout, "session", who.SessionID, nil, err)
	return err
}

// CleanupExpired 清理过期会话，供定时任务调用
func (s *AuthService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

// expiryFor 后端 token 为 JWT 且带 exp 时以其为准，否则使用默认时长
// 这里只读取声明，不校验签名 (签名密钥在后端)
func (s *AuthService) expiryFor(token string, now time.Time) time.Time {
	if exp, ok := BackendTokenExpiry(token); ok {
		return exp
	}
	return now.Add(s.ttl)
}

// BackendTokenExpiry 读取后端 token 的 exp 声明
func BackendTokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
