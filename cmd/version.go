package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocs25",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocs25 v%s\n", version.Version)
		fmt.Println("CS-25 Aircraft Preliminary Geometry Tool")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
