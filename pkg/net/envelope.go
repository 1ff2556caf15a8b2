package net

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// 后端列表数据可能出现的字段名，按优先级
var DefaultListKeys = []string{"items", "data", "collections", "products", "coupons", "blogs", "orders"}

// Envelope 后端统一响应 {success, message, ...}
// 不同接口把数据放在不同字段里，这里保留原始字段，由调用方按资源解包
type Envelope struct {
	StatusCode int
	Success    bool
	Message    string

	fields     map[string]json.RawMessage
	hasSuccess bool
}

// UnmarshalJSON 解析响应体
func (e *Envelope) UnmarshalJSON(b []byte) error {
	fields := make(map[string]json.RawMessage)
	// 部分接口直接返回数组
	if isArray(b) {
		fields["data"] = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
		e.fields = fields
		return nil
	}
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	e.fields = fields

	if raw, ok := fields["success"]; ok && !isNull(raw) {
		e.hasSuccess = true
		if err := json.Unmarshal(raw, &e.Success); err != nil {
			return fmt.Errorf("success 字段格式错误: %w", err)
		}
	}
	if raw, ok := fields["message"]; ok {
		// message 偶尔不是字符串，忽略解析失败
		_ = json.Unmarshal(raw, &e.Message)
	}
	return nil
}

// Has 字段是否存在且非 null
func (e *Envelope) Has(key string) bool {
	raw, ok := e.fields[key]
	return ok && !isNull(raw)
}

// Raw 原始字段
func (e *Envelope) Raw(key string) (json.RawMessage, bool) {
	raw, ok := e.fields[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// Decode 解析指定字段，字段不存在时返回 false
func (e *Envelope) Decode(key string, out any) (bool, error) {
	raw, ok := e.Raw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("解析字段 %s 失败: %w", key, err)
	}
	return true, nil
}

// DecodeList 依次尝试 keys，取第一个 JSON 数组解析到 out
// 均不存在时 out 保持原值 (调用方传入空切片即得到空列表)
func (e *Envelope) DecodeList(out any, keys ...string) error {
	if len(keys) == 0 {
		keys = DefaultListKeys
	}
	for _, key := range keys {
		raw, ok := e.Raw(key)
		if !ok || !isArray(raw) {
			continue
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("解析列表 %s 失败: %w", key, err)
		}
		return nil
	}
	return nil
}

// DecodeObject 依次尝试 keys，取第一个 JSON 对象解析到 out
func (e *Envelope) DecodeObject(out any, keys ...string) (bool, error) {
	for _, key := range keys {
		raw, ok := e.Raw(key)
		if !ok || !isObject(raw) {
			continue
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return true, fmt.Errorf("解析对象 %s 失败: %w", key, err)
		}
		return true, nil
	}
	return false, nil
}

// String 读取字符串字段
func (e *Envelope) String(key string) string {
	var s string
	if _, err := e.Decode(key, &s); err != nil {
		return ""
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
