// Package repo 负责仓库根目录的定位与初始化。
// 定位是向上查找；初始化是显式命令——存储核心本身只找不建。
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"rebar/pkg/refs"
)

// MetaDir 是保留的元数据目录名
const MetaDir = ".rebar"

// NoRepositoryError 表示从起点一路向上都没有找到仓库
// Path 里记录的是最初的起点，而不是搜索停下来的位置。
type NoRepositoryError struct {
	Path string
}

func (e *NoRepositoryError) Error() string {
	return fmt.Sprintf("Path '%s' is not inside a rebar repository", e.Path)
}

// Find 从 start 开始向上逐级查找 .rebar 目录，返回它的路径
// 纯粹是调用时刻文件系统状态的函数，不做缓存：
// 单次 CLI 调用的生命周期内，工作目录随时可能变化，缓存不值得。
func Find(start string) (string, error) {
	current := start
	for {
		candidate := filepath.Join(current, MetaDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// 到文件系统根了
			break
		}
		current = parent
	}

	return "", &NoRepositoryError{Path: start}
}

// ObjectsDir 返回仓库的对象目录
func ObjectsDir(root string) string {
	return filepath.Join(root, "objects")
}

// Init 在 dir 下创建一个新仓库：
//
//	.rebar/
//	  objects/
//	  pointers/
//	  HEAD        (符号引用，指向 main)
//
// 仓库已存在时返回 (root, false, nil)，由调用方决定怎么提示。
func Init(dir string) (string, bool, error) {
	root := filepath.Join(dir, MetaDir)

	if _, err := os.Stat(root); err == nil {
		return root, false, nil
	}

	for _, sub := range []string{ObjectsDir(root), filepath.Join(root, "pointers")} {
		if err := os.MkdirAll(sub, 0755); err != nil {
			return "", false, fmt.Errorf("failed to create repo directory: %w", err)
		}
	}

	if err := refs.NewManager(root).SetHead("ref: refs/heads/main"); err != nil {
		return "", false, fmt.Errorf("failed to write HEAD: %w", err)
	}

	return root, true, nil
}
