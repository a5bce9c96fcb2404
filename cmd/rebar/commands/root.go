package commands

import (
	"fmt"
	"os"

	"rebar/pkg/app"
	"rebar/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// 全局应用实例，供子命令使用
	RB *app.App
)

// skipAppInit 列出不需要 (或不能) 预先定位仓库的命令：
// init 是去创建仓库的；hash-object 不带 -w 时在仓库外也要能跑，
// 需要仓库时它自己延迟装配。
var skipAppInit = map[string]bool{
	"init":        true,
	"hash-object": true,
}

var rootCmd = &cobra.Command{
	Use:   "rebar",
	Short: "Rebar: a minimal content-addressable version control store",
	// PersistentPreRunE 会在所有子命令执行前运行
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipAppInit[cmd.Name()] {
			return nil
		}

		var err error
		RB, err = app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize rebar: %w\n(Did you run 'rebar init'?)", err)
		}
		return nil
	},
}

// Execute 是入口
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// 全局参数 --config
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rebar/config.yaml)")

	// 压缩档位既可以写在 yaml 里，也可以用 flag 覆盖
	// flag 默认值和 setDefaults 保持一致，否则未改动的 flag 会把默认档位顶掉
	rootCmd.PersistentFlags().Int("compression-level", 3, "zstd compression level (0-22, 0 = codec default)")
	if err := viper.BindPFlag("object.compression_level", rootCmd.PersistentFlags().Lookup("compression-level")); err != nil {
		fmt.Println("Failed to bind flag:", err)
		os.Exit(1)
	}
}

// initConfig 读取配置文件和环境变量
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}
}
