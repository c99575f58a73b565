package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pipegraph "github.com/connormcn37/pipe-graph"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pipegraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pipegraph version %s\n", strings.TrimSpace(pipegraph.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
