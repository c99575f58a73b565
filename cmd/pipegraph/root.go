package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipegraph",
	Short: "pipegraph is a tick-driven dataflow graph engine",
	Long: `pipegraph runs directed graphs of processing nodes in lock-step ticks.
Graphs are declared in YAML files wiring sources, transforms and taps;
cycles are legal and resolve against the previous tick's outputs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
}
