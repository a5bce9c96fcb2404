// pkg/app/app.go
package app

import (
	"fmt"
	"os"

	"rebar/pkg/config"
	"rebar/pkg/exporter"
	"rebar/pkg/ingester"
	"rebar/pkg/refs"
	"rebar/pkg/repo"
	"rebar/pkg/storage"
	"rebar/pkg/storage/disk"
)

// App 是整个应用程序的依赖容器 (Dependency Container)
// 它持有所有“单例”服务
type App struct {
	Config   config.Config
	Store    storage.Store
	Refs     *refs.Manager
	RepoPath string // .rebar 目录
}

// NewApp 是工厂函数，负责组装这一台机器
// 失败的典型原因：不在仓库里 (NoRepository)、配置非法。
func NewApp() (*App, error) {
	// 1. 收敛配置
	cfg, err := config.FromViper()
	if err != nil {
		return nil, err
	}

	// 2. 从当前目录向上定位仓库
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := repo.Find(wd)
	if err != nil {
		return nil, err
	}

	// 3. 初始化存储层 (Dependency Injection)
	store, err := disk.NewAdapter(repo.ObjectsDir(root))
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Refs:     refs.NewManager(root),
		RepoPath: root,
	}, nil
}

// Ingester 返回装配好的写入器
func (a *App) Ingester() *ingester.Ingester {
	return ingester.NewIngester(a.Store, a.Config)
}

// Exporter 返回装配好的读取器
func (a *App) Exporter() *exporter.Exporter {
	return exporter.NewExporter(a.Store, a.Config)
}
