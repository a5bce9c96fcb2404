package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"rebar/pkg/app"
	"rebar/pkg/config"
	"rebar/pkg/refs"
	"rebar/pkg/repo"
	"rebar/pkg/storage/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupIntegrationEnv 搭建一个使用真实文件系统的集成环境
func setupIntegrationEnv(t *testing.T) (*app.App, string) {
	t.Helper()

	// 1. 准备临时工作目录并初始化仓库
	tmpDir := t.TempDir()
	root, created, err := repo.Init(tmpDir)
	require.NoError(t, err)
	require.True(t, created)

	// 2. 初始化真实的文件存储
	store, err := disk.NewAdapter(repo.ObjectsDir(root))
	require.NoError(t, err)

	// 3. 组装 App
	application := &app.App{
		Config:   config.Config{CompressionLevel: 3, SizeLimit: 10 * 1024 * 1024},
		Store:    store,
		Refs:     refs.NewManager(root),
		RepoPath: root,
	}

	// 4. 注入全局变量 RB
	// cmd 包依赖全局变量 RB，测试里临时覆盖它
	RB = application
	t.Cleanup(func() { RB = nil })

	return application, tmpDir
}

func TestIntegration_HashThenCat(t *testing.T) {
	application, _ := setupIntegrationEnv(t)
	ctx := context.Background()

	// 模拟 `rebar hash-object -w`：直接走 ingester
	content := []byte("integration round trip\n")
	blob, err := application.Ingester().IngestBlob(ctx, bytes.NewReader(content), true)
	require.NoError(t, err)

	// 执行 cat-file 命令，验证输出就是原始内容
	var out bytes.Buffer
	catFileCmd.SetOut(&out)
	catFileCmd.SetContext(ctx)
	defer catFileCmd.SetOut(nil)

	err = catFileCmd.RunE(catFileCmd, []string{blob.ID().String()})
	require.NoError(t, err)
	assert.Equal(t, content, out.Bytes())
}

func TestIntegration_CatRejectsBadHash(t *testing.T) {
	setupIntegrationEnv(t)

	// 语法非法的 hash 必须在碰文件系统之前失败
	err := catFileCmd.RunE(catFileCmd, []string{"not-a-hash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect hash length")
}

func TestIntegration_InitCommand(t *testing.T) {
	tmpDir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	initCmd.SetOut(&out)
	defer initCmd.SetOut(nil)

	require.NoError(t, initCmd.RunE(initCmd, nil))
	assert.Contains(t, out.String(), "Initialized empty rebar repository")

	// 目录结构齐全
	root := filepath.Join(tmpDir, repo.MetaDir)
	for _, p := range []string{root, repo.ObjectsDir(root), filepath.Join(root, "pointers")} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.True(t, info.IsDir())
	}

	// 重复 init 只是警告
	out.Reset()
	require.NoError(t, initCmd.RunE(initCmd, nil))
	assert.Contains(t, out.String(), "already exists")
}
