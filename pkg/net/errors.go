package net

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError 后端业务失败 (success:false 或 4xx/5xx 带 message)
// Message 原样展示给管理员
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.StatusCode)
	}
	return e.Message
}

// TransportError 网络层失败：连接失败、超时、响应无法解析
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError 判断是否为后端业务错误
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransportError 判断是否为网络层错误
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

func statusMessage(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", code)
}
