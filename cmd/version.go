package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosteel v%s\n", version.Version)
		fmt.Println("Steel Member Resistance Checks")
		fmt.Printf("Based on %s\n", version.Codes)
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
