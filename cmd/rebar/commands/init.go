package commands

import (
	"fmt"
	"os"

	"rebar/pkg/repo"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a rebar repository",
	Long:  `Create an empty .rebar repository in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		root, created, err := repo.Init(wd)
		if err != nil {
			return fmt.Errorf("failed to create repo directory: %w", err)
		}

		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Rebar repository already exists in %s\n", root)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Initialized empty rebar repository in %s\n", root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
