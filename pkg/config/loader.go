package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// 构建期常量 (压缩档位、大小上限) 在这里变成显式配置值。
// 组件不直接读 viper，而是拿一个 Config 结构体——
// 全局状态只存在于 CLI 装配层。
type Config struct {
	// CompressionLevel 是 zstd 档位，合法范围 0-22，0 表示用库默认
	CompressionLevel int

	// SizeLimit 是单个对象压缩后 payload 的字节上限
	// 读取端用它拒绝声明了夸张长度的 (恶意/损坏的) header。
	SizeLimit int
}

// Load 初始化 Viper 配置
// cfgFile: 可选，用户显式指定的配置文件路径
func Load(cfgFile string) error {
	// 1. 设置默认值 (Defaults)
	setDefaults()

	// 2. 配置搜索路径
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// 搜索顺序：当前目录 -> ./.rebar -> ~/.rebar
		viper.AddConfigPath(".")
		viper.AddConfigPath(MetaDirName)
		viper.AddConfigPath(filepath.Join(home, MetaDirName))

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// 3. 读取环境变量 (REBAR_OBJECT_SIZE_LIMIT 等)
	viper.SetEnvPrefix("REBAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 4. 读取配置文件；没找到不算错，格式错才算
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}

	return nil
}

// MetaDirName 和 repo.MetaDir 保持一致；在这里重复定义是为了
// 避免 config -> repo 的反向依赖。
const MetaDirName = ".rebar"

func setDefaults() {
	viper.SetDefault("object.compression_level", 3)
	viper.SetDefault("object.size_limit", 10*1024*1024) // 10 MB
}

// FromViper 把当前 viper 状态收敛成一个校验过的 Config
func FromViper() (Config, error) {
	cfg := Config{
		CompressionLevel: viper.GetInt("object.compression_level"),
		SizeLimit:        viper.GetInt("object.size_limit"),
	}

	if cfg.CompressionLevel < 0 || cfg.CompressionLevel > 22 {
		return Config{}, fmt.Errorf("compression level must be between 1 and 22, or 0 to use default (got %d)", cfg.CompressionLevel)
	}
	if cfg.SizeLimit <= 0 {
		return Config{}, fmt.Errorf("object size limit must be positive (got %d)", cfg.SizeLimit)
	}

	return cfg, nil
}
