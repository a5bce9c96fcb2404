package e2e

import (
	"bytes"
	"context"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"rebar/pkg/config"
	"rebar/pkg/exporter"
	"rebar/pkg/ingester"
	"rebar/pkg/repo"
	"rebar/pkg/storage"
	"rebar/pkg/storage/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow 验证核心往返性质：
// init -> hash-object -w -> cat-file，从嵌套子目录定位仓库，
// 读回的字节必须和写入的完全一致。
func TestWorkflow(t *testing.T) {
	// 1. 基础设施准备
	// -------------------------------------------------------------
	tmpDir := t.TempDir()

	root, created, err := repo.Init(tmpDir)
	require.NoError(t, err)
	require.True(t, created)

	cfg := config.Config{CompressionLevel: 3, SizeLimit: 10 * 1024 * 1024}
	ctx := context.Background()

	// 2. 模拟从三层深的工作目录发起操作：先定位仓库
	// -------------------------------------------------------------
	nested := filepath.Join(tmpDir, "src", "deep", "down")
	require.NoError(t, os.MkdirAll(nested, 0755))

	located, err := repo.Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, located)

	store, err := disk.NewAdapter(repo.ObjectsDir(located))
	require.NoError(t, err)

	// 3. 写入：包含空内容和随机二进制
	// -------------------------------------------------------------
	payloads := [][]byte{
		[]byte("hello rebar\n"),
		{},
		randomBytes(t, 256*1024),
	}

	ing := ingester.NewIngester(store, cfg)
	exp := exporter.NewExporter(store, cfg)

	for _, payload := range payloads {
		blob, err := ing.IngestBlob(ctx, bytes.NewReader(payload), true)
		require.NoError(t, err)
		require.NoError(t, blob.ID().Validate())

		// 4. 读回并比对
		var out bytes.Buffer
		require.NoError(t, exp.Export(ctx, blob.ID(), &out))
		assert.Equal(t, payload, out.Bytes())

		// 5. 重复写同样的内容必须撞上 AlreadyExists
		_, err = ing.IngestBlob(ctx, bytes.NewReader(payload), true)
		var exists *storage.AlreadyExistsError
		assert.ErrorAs(t, err, &exists)
	}
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}
