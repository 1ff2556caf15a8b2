package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotLoggedIn 会话文件不存在
var ErrNotLoggedIn = errors.New("未登录，请先执行 login")

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".phonewraps-admin-session"
	}
	return filepath.Join(home, ".phonewraps-admin", "session")
}

// writeSessionID 只保存会话 ID，后端 token 留在数据库
func writeSessionID(path, id string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("创建会话目录失败: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("写入会话文件失败: %w", err)
	}
	return nil
}

func readSessionID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("读取会话文件失败: %w", err)
	}
	id := strings.TrimSpace(string(data))
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("会话文件内容无效: %w", err)
	}
	return id, nil
}

func removeSessionFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
