package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bstr/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return emit(cmd, info.String(), info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
