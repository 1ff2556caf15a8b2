package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey      string        // 签名密钥
	AccessTokenTTL time.Duration // Access Token 有效期，不会超过会话本身
	Issuer         string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:      "phonewraps-admin-secret-change-in-production",
		AccessTokenTTL: 12 * time.Hour,
		Issuer:         "phonewraps-admin",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// SessionClaims 管理员会话声明，Subject 为会话 ID
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 ====================

// GenerateAccessToken 为会话签发 Access Token
func GenerateAccessToken(sess *model.Session) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(jwtConfig.AccessTokenTTL)
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(expiresAt) {
		expiresAt = sess.ExpiresAt
	}

	claims := &SessionClaims{
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtConfig.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ==================== Token 解析 ====================

// ParseToken 解析 Token
func ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	}, jwt.WithIssuer(jwtConfig.Issuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeySession = "session"
	ContextKeyClaims  = "claims"
)

// SessionResolver 按会话 ID 取有效会话
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*model.Session, error)
}

// SessionAuth 认证中间件
// Bearer Token -> 会话 ID -> 数据库中的有效会话
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization Header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "未提供认证信息")
			return
		}

		// 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "认证格式错误，应为 Bearer {token}")
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token 无效或已过期")
			return
		}

		// 登出或过期后 Token 即失效
		sess, err := resolver.Resolve(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthorized(c, "会话已失效，请重新登录")
			return
		}

		c.Set(ContextKeySession, sess)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    401,
		"message": msg,
	})
	c.Abort()
}

// ==================== 辅助函数 ====================

// GetSession 从 Context 获取当前会话
func GetSession(c *gin.Context) *model.Session {
	if v, exists := c.Get(ContextKeySession); exists {
		if sess, ok := v.(*model.Session); ok {
			return sess
		}
	}
	return nil
}

// GetClaims 从 Context 获取完整 Claims
func GetClaims(c *gin.Context) *SessionClaims {
	if v, exists := c.Get(ContextKeyClaims); exists {
		if claims, ok := v.(*SessionClaims); ok {
			return claims
		}
	}
	return nil
}
