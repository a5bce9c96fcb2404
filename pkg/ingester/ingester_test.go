package ingester

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"rebar/pkg/config"
	"rebar/pkg/storage"
	"rebar/pkg/storage/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{CompressionLevel: 3, SizeLimit: 10 * 1024 * 1024}
}

func newTestStore(t *testing.T) (*disk.Adapter, string) {
	t.Helper()
	objectsDir := filepath.Join(t.TempDir(), "objects")
	require.NoError(t, os.Mkdir(objectsDir, 0755))
	store, err := disk.NewAdapter(objectsDir)
	require.NoError(t, err)
	return store, objectsDir
}

func TestIngestBlob_Persist(t *testing.T) {
	store, objectsDir := newTestStore(t)
	ing := NewIngester(store, testConfig())
	ctx := context.Background()

	blob, err := ing.IngestBlob(ctx, bytes.NewReader([]byte("hello world")), true)
	require.NoError(t, err)
	require.NoError(t, blob.ID().Validate())

	// 落盘文件名 = handle，内容 = 完整 frame
	data, err := os.ReadFile(filepath.Join(objectsDir, blob.ID().String()))
	require.NoError(t, err)
	assert.Equal(t, blob.Bytes(), data)
}

func TestIngestBlob_NoPersist(t *testing.T) {
	store, objectsDir := newTestStore(t)
	ing := NewIngester(store, testConfig())

	blob, err := ing.IngestBlob(context.Background(), bytes.NewReader([]byte("dry run")), false)
	require.NoError(t, err)
	assert.False(t, blob.ID().IsZero())

	// persist=false 时 objects 目录必须原封不动
	entries, err := os.ReadDir(objectsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIngestBlob_NoPersistWithoutStore(t *testing.T) {
	// 只算哈希时完全不需要仓库
	ing := NewIngester(nil, testConfig())

	blob, err := ing.IngestBlob(context.Background(), bytes.NewReader([]byte("stateless")), false)
	require.NoError(t, err)
	assert.False(t, blob.ID().IsZero())
}

func TestIngestBlob_DuplicateWrite(t *testing.T) {
	store, _ := newTestStore(t)
	ing := NewIngester(store, testConfig())
	ctx := context.Background()

	content := []byte("write me twice")

	first, err := ing.IngestBlob(ctx, bytes.NewReader(content), true)
	require.NoError(t, err)

	// 同样的内容再写一次：handle 相同，但必须报 AlreadyExists
	_, err = ing.IngestBlob(ctx, bytes.NewReader(content), true)
	require.Error(t, err)

	var exists *storage.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Contains(t, exists.Path, first.ID().String())
}

func TestIngestBlob_Deterministic(t *testing.T) {
	ing := NewIngester(nil, testConfig())
	ctx := context.Background()

	b1, err := ing.IngestBlob(ctx, bytes.NewReader([]byte("stable")), false)
	require.NoError(t, err)
	b2, err := ing.IngestBlob(ctx, bytes.NewReader([]byte("stable")), false)
	require.NoError(t, err)

	assert.Equal(t, b1.ID(), b2.ID())
}
