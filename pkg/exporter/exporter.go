package exporter

import (
	"context"
	"fmt"
	"io"

	"rebar/pkg/config"
	"rebar/pkg/core"
	"rebar/pkg/storage"
	"rebar/pkg/types"
)

// Exporter 是读取路径：定位 -> 解析 header -> 有界读取 -> 解压。
type Exporter struct {
	store storage.Store
	cfg   config.Config
}

func NewExporter(store storage.Store, cfg config.Config) *Exporter {
	return &Exporter{store: store, cfg: cfg}
}

// Export 读出 hash 对应的对象，把解压后的内容写进 writer
// 约定：hash 的语法已经由调用方校验过 (types.Hash.Validate)。
func (e *Exporter) Export(ctx context.Context, hash types.Hash, writer io.Writer) error {
	// 1. 打开落盘记录
	reader, err := e.store.Get(ctx, hash)
	if err != nil {
		return err
	}
	defer reader.Close()

	// 2. 有界解析：header + 精确长度的压缩 payload
	objectType, payload, err := core.ReadRecord(reader, e.cfg.SizeLimit)
	if err != nil {
		return err
	}

	// 3. 按类型分发
	// blob 没有进一步的结构检查；tree/commit 实现后在这里挂解析器。
	switch objectType {
	case core.TypeBlob:
		content, err := core.Decompress(payload)
		if err != nil {
			return err
		}
		if _, err := writer.Write(content); err != nil {
			return fmt.Errorf("failed to write content: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unhandled object type: %s", objectType)
	}
}
