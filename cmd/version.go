package cmd

import (
	"fmt"
	"tftp-router-flasher/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nCommit: %s\nBuilt: %s\nDirty: %v\nGo: %s\n",
			info.Version, info.Commit, info.Date, info.Dirty, info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
