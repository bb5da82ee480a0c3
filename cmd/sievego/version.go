package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// SemVer is the current semantic version of sievego.
const SemVer = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sievego %s (%s)\n", SemVer, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
