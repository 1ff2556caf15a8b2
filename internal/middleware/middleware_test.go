package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试桩 ====================

type stubResolver struct {
	sessions map[string]*model.Session
}

func (s *stubResolver) Resolve(ctx context.Context, id string) (*model.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, errors.New("session not found")
}

func newSession(id string) *model.Session {
	return &model.Session{
		ID:        id,
		Email:     "admin@phonewraps.in",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func protectedRouter(resolver SessionResolver) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", SessionAuth(resolver), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetSession(c).Email, "sub": GetClaims(c).Subject})
	})
	return r
}

func doGet(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== JWT / 会话 ====================

func TestGenerateAccessToken_CappedBySession(t *testing.T) {
	sess := newSession("s-1")
	sess.ExpiresAt = time.Now().Add(10 * time.Minute)

	token, exp, err := GenerateAccessToken(sess)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, sess.ExpiresAt, exp, time.Second)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.Subject)
	assert.Equal(t, sess.Email, claims.Email)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(newSession("s-1"))
	require.NoError(t, err)

	prev := GetJWTConfig()
	SetJWTConfig(&JWTConfig{SecretKey: "other", AccessTokenTTL: time.Hour, Issuer: prev.Issuer})
	defer SetJWTConfig(prev)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestSessionAuth(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*model.Session{"live": newSession("live")}}
	r := protectedRouter(resolver)

	live, _, err := GenerateAccessToken(newSession("live"))
	require.NoError(t, err)
	gone, _, err := GenerateAccessToken(newSession("logged-out"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"缺少认证头", "", http.StatusUnauthorized},
		{"格式错误", "Token " + live, http.StatusUnauthorized},
		{"Token 无效", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"会话已删除", "Bearer " + gone, http.StatusUnauthorized},
		{"有效会话", "Bearer " + live, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/me", tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	w := doGet(r, "/me", "Bearer "+live)
	assert.Contains(t, w.Body.String(), "admin@phonewraps.in")
	assert.Contains(t, w.Body.String(), `"sub":"live"`)
}

// ==================== 请求 ID ====================

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = doGet(r, "/ping", "")
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

// ==================== 冷却限流 ====================

func TestCooldownLimiter_Check(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewCooldownLimiter()
	l.now = func() time.Time { return now }

	assert.True(t, l.Check("k", 5*time.Second).Allowed)

	now = now.Add(2 * time.Second)
	res := l.Check("k", 5*time.Second)
	assert.False(t, res.Allowed)
	assert.Equal(t, 3*time.Second, res.RetryAfter)

	// 其他 key 不受影响
	assert.True(t, l.Check("other", 5*time.Second).Allowed)

	now = now.Add(3 * time.Second)
	assert.True(t, l.Check("k", 5*time.Second).Allowed)

	l.Reset("k")
	assert.True(t, l.Check("k", 5*time.Second).Allowed)
}

func TestCooldown_Middleware(t *testing.T) {
	r := gin.New()
	r.POST("/reset", Cooldown(NewCooldownLimiter(), "reset", time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/reset", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/reset", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "1 分钟后重试")
}

func TestFormatRetryMessage(t *testing.T) {
	assert.Equal(t, "操作过于频繁，请 1 秒后重试", formatRetryMessage(200*time.Millisecond))
	assert.Equal(t, "操作过于频繁，请 30 秒后重试", formatRetryMessage(30*time.Second))
	assert.Equal(t, "操作过于频繁，请 2 分钟后重试", formatRetryMessage(2*time.Minute))
	assert.Equal(t, "操作过于频繁，请 1 分 30 秒后重试", formatRetryMessage(90*time.Second))
}
