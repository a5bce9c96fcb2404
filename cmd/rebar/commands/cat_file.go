package commands

import (
	"rebar/pkg/types"

	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file <hash>",
	Short: "Print the contents of a stored object",
	Long:  `Look up an object by its full 64-character hash and write the decompressed content to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := types.Hash(args[0])

		// 语法校验在任何 IO 之前
		if err := hash.Validate(); err != nil {
			return err
		}

		return RB.Exporter().Export(cmd.Context(), hash, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(catFileCmd)
}
