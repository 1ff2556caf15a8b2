package service

import (
	"errors"
	"fmt"
)

// ValidationError 提交前的本地校验失败，不会发出任何后端请求
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError 判断是否为本地校验错误
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrFormFull 合集 5 个等级均已占用
var ErrFormFull = &ValidationError{Field: "level", Message: "All 5 levels in this collection are already used"}
