package ingester

import (
	"context"
	"fmt"
	"io"

	"rebar/pkg/config"
	"rebar/pkg/core"
	"rebar/pkg/storage"
)

// Ingester 是写入路径：读内容 -> 密封成 Blob -> (可选) 持久化。
type Ingester struct {
	store storage.Store
	cfg   config.Config
}

// NewIngester 创建写入器
// store 可以为 nil——只算哈希不落盘 (persist=false) 时用不到它。
func NewIngester(store storage.Store, cfg config.Config) *Ingester {
	return &Ingester{store: store, cfg: cfg}
}

// IngestBlob 从 reader 读取全部内容并密封
// persist=true 时写入对象库；无论是否持久化，Hash 都会算出来返回。
// 重复写同一个 handle 由存储层报 AlreadyExists，这里不吞掉。
func (ing *Ingester) IngestBlob(ctx context.Context, reader io.Reader, persist bool) (*core.Blob, error) {
	// 1. 读取全部数据
	// 对象以整体为单位压缩和哈希，没有流式写法
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	// 2. 压缩 + 框定 + 哈希
	blob, err := core.NewBlob(data, ing.cfg.CompressionLevel)
	if err != nil {
		return nil, err
	}

	// 3. 持久化 (可选)
	if persist {
		if ing.store == nil {
			return nil, fmt.Errorf("no object store configured")
		}
		if err := ing.store.Put(ctx, blob); err != nil {
			return nil, err
		}
	}

	return blob, nil
}
