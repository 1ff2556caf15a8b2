package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
)

// Dispatcher 店铺后端调用入口
// 仓储层只依赖该接口，测试中可替换
type Dispatcher interface {
	Send(ctx context.Context, req *Request) (*Envelope, error)
}

// ClientConfig 客户端配置
type ClientConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerMinute int // <=0 表示不限流
	Debug         bool
}

// Client 基于 resty 的后端客户端
// 不做重试：失败直接返回给调用方展示
type Client struct {
	rc      *resty.Client
	limiter *rate.Limiter
}

var _ Dispatcher = (*Client)(nil)

// NewClient 创建客户端
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetDebug(cfg.Debug).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "PhoneWraps-Admin/1.0")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}

	return &Client{rc: rc, limiter: limiter}
}

// Send 发送请求并解析统一响应
func (c *Client) Send(ctx context.Context, req *Request) (*Envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("rate limited: %w", err)}
	}

	rr := req.build(c.rc.R().SetContext(ctx))
	resp, err := rr.Execute(req.Method, req.Path)
	if err != nil {
		logger.L().Warn("后端请求失败",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	env, err := parseEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		logger.L().Warn("后端响应无法解析",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status", resp.StatusCode()),
			zap.Error(err))
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	if !env.Success {
		logger.L().Info("后端返回业务失败",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status", env.StatusCode),
			zap.String("message", env.Message))
		return env, &APIError{StatusCode: env.StatusCode, Message: env.Message}
	}
	return env, nil
}

// parseEnvelope 解析响应体
// 204 视为成功；4xx/5xx 无 message 时使用状态文本
func parseEnvelope(status int, body []byte) (*Envelope, error) {
	env := &Envelope{StatusCode: status}

	if len(body) == 0 {
		if status == http.StatusNoContent || (status >= 200 && status < 300) {
			env.Success = true
			return env, nil
		}
		env.Message = statusMessage(status)
		return env, nil
	}

	if err := json.Unmarshal(body, env); err != nil {
		if status >= 400 {
			env.Success = false
			env.Message = statusMessage(status)
			return env, nil
		}
		return nil, fmt.Errorf("响应不是合法 JSON: %w", err)
	}
	env.StatusCode = status

	// 未携带 success 字段的 2xx 响应按成功处理
	if !env.hasSuccess && status >= 200 && status < 300 {
		env.Success = true
	}
	if status >= 400 {
		env.Success = false
		if env.Message == "" {
			env.Message = statusMessage(status)
		}
	}
	return env, nil
}
