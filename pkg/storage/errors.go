package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

// IO 层错误分类：NotFound / Permission / AlreadyExists / 其他。
// 都尽量带上出错的路径。

// NotFoundError 表示文件或目录不存在
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File or directory not found: %s", e.Path)
}

// PermissionError 表示权限不足
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("Permission denied: %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// AlreadyExistsError 表示目标路径已经被占用
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("File or directory already exists: %s", e.Path)
}

// WrapPathError 把 OS 错误按 kind 映射到上面的分类
// 不认识的 kind 原样透传 (调用方通常再包一层上下文)。
func WrapPathError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &NotFoundError{Path: path}
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Path: path, Err: err}
	case errors.Is(err, fs.ErrExist):
		return &AlreadyExistsError{Path: path}
	default:
		return err
	}
}
