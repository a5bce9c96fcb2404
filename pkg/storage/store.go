package storage

import (
	"context"
	"io"

	"rebar/pkg/core"
	"rebar/pkg/types"
)

// Store defines the interface for a storage backend.
// 目前只有本地磁盘实现；接口留在这里是为了让上层 (ingester/exporter)
// 不感知对象到底存在哪。
type Store interface {
	// Put 将一个密封好的对象持久化
	// 对象已经存在时必须报 AlreadyExists——重复写不是静默 no-op，
	// 因为“文件已存在”只在哈希从未碰撞的前提下才等价于“内容相同”。
	Put(ctx context.Context, obj core.Object) error

	// Get 根据 Hash 读取原始落盘字节
	// 返回 io.ReadCloser 而不是 []byte：读取路径要先看 header
	// 再决定读多少，不应该无条件把整个文件拉进内存。
	Get(ctx context.Context, hash types.Hash) (io.ReadCloser, error)

	// Has 检查对象是否存在
	Has(ctx context.Context, hash types.Hash) (bool, error)
}
