package refs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoHead = errors.New("HEAD not found (clean repo)")

// Manager 负责管理引用 (Refs)，目前主要是 HEAD
// commit/log 实现之后，分支指针 (pointers/) 也会从这里走。
type Manager struct {
	rootPath string
}

func NewManager(rootPath string) *Manager {
	return &Manager{rootPath: rootPath}
}

// headPath 返回 .rebar/HEAD 的物理路径
func (m *Manager) headPath() string {
	return filepath.Join(m.rootPath, "HEAD")
}

// Head 读取 HEAD 的当前内容
// 新仓库 (文件不存在) 返回 ErrNoHead。
func (m *Manager) Head() (string, error) {
	data, err := os.ReadFile(m.headPath())
	if os.IsNotExist(err) {
		return "", ErrNoHead
	}
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	// 清理换行符 (手工编辑时尾部多半带 \n)
	return strings.TrimSpace(string(data)), nil
}

// SetHead 更新 HEAD
func (m *Manager) SetHead(ref string) error {
	return os.WriteFile(m.headPath(), []byte(ref+"\n"), 0644)
}
