package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rebar/pkg/core"
	"rebar/pkg/storage"
	"rebar/pkg/types"
)

// Adapter 实现了 storage.Store 接口
// 布局是平铺的：objects/<hash>，文件名就是完整的 64 字符 handle。
type Adapter struct {
	rootPath string // 比如: /home/user/project/.rebar/objects
}

// NewAdapter 创建一个新的磁盘存储适配器
// 注意：objects 目录由 `rebar init` 创建，定位器只负责找到它。
// 这里只验证目录存在，绝不补创建——补创建会把“不在仓库里”
// 这种用户错误变成一个悄悄出现的半个仓库。
func NewAdapter(root string) (*Adapter, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, storage.WrapPathError(root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("objects path is not a directory: %s", root)
	}
	return &Adapter{rootPath: root}, nil
}

// path 返回 hash 对应的物理路径
func (s *Adapter) path(hash types.Hash) string {
	return filepath.Join(s.rootPath, hash.String())
}

// Put 原子且排他地写入一个对象
// 技巧：先写到同目录下的临时文件，再用 os.Link 挂到最终名字。
// link 是原子的，所以读者要么看不到文件、要么看到完整文件；
// link 又在目标已存在时报 EEXIST，所以并发写同一个 handle 时
// 恰好有一个赢家，输家拿到 AlreadyExists。一个系统调用同时满足
// 两条要求，不需要任何锁。
func (s *Adapter) Put(ctx context.Context, obj core.Object) error {
	targetPath := s.path(obj.ID())

	tempFile, err := os.CreateTemp(s.rootPath, "tmp-*")
	if err != nil {
		return storage.WrapPathError(s.rootPath, err)
	}
	// 无论成败，临时文件最后都要清掉
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(obj.Bytes()); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to flush object: %w", err)
	}

	if err := os.Link(tempFile.Name(), targetPath); err != nil {
		return storage.WrapPathError(targetPath, err)
	}

	return nil
}

func (s *Adapter) Get(ctx context.Context, hash types.Hash) (io.ReadCloser, error) {
	targetPath := s.path(hash)

	f, err := os.Open(targetPath)
	if err != nil {
		return nil, storage.WrapPathError(targetPath, err)
	}
	return f, nil
}

func (s *Adapter) Has(ctx context.Context, hash types.Hash) (bool, error) {
	_, err := os.Stat(s.path(hash))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
