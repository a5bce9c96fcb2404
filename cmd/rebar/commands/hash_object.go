package commands

import (
	"fmt"
	"io"
	"os"

	"rebar/pkg/app"
	"rebar/pkg/config"
	"rebar/pkg/ingester"
	"rebar/pkg/storage"

	"github.com/spf13/cobra"
)

var (
	hashObjectWrite bool
	hashObjectStdin bool
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [file]",
	Short: "Compute the object hash for a file, optionally writing it to the store",
	Long: `Compress the content, frame it with a blob header and print the SHA256
of the framed record. With -w the record is also persisted under
<repo>/objects/<hash>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 输入校验：stdin 和文件二选一
		if hashObjectStdin && len(args) > 0 {
			return fmt.Errorf("argument conflict: cannot use --stdin together with a file path")
		}
		if !hashObjectStdin && len(args) == 0 {
			return fmt.Errorf("missing required argument: file (or use --stdin)")
		}

		// 2. 准备内容来源
		var reader io.Reader
		if hashObjectStdin {
			reader = cmd.InOrStdin()
		} else {
			f, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			reader = f
		}

		// 3. 装配写入器
		// 不带 -w 时在仓库外也要能工作，所以 App 延迟到这里才 (可能) 创建
		var ing *ingester.Ingester
		if hashObjectWrite {
			application, err := app.NewApp()
			if err != nil {
				return err
			}
			ing = application.Ingester()
		} else {
			cfg, err := config.FromViper()
			if err != nil {
				return err
			}
			ing = ingester.NewIngester(nil, cfg)
		}

		blob, err := ing.IngestBlob(cmd.Context(), reader, hashObjectWrite)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), blob.ID())
		return nil
	},
}

// openSource 打开输入文件，把 OS 错误映射成带路径的分类错误
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, storage.WrapPathError(path, err)
	}
	return f, nil
}

func init() {
	hashObjectCmd.Flags().BoolVarP(&hashObjectWrite, "write", "w", false, "write the object into the repository")
	hashObjectCmd.Flags().BoolVar(&hashObjectStdin, "stdin", false, "read the content from stdin")
	rootCmd.AddCommand(hashObjectCmd)
}
