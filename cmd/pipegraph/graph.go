package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connormcn37/pipe-graph/internal/cli"
	"github.com/connormcn37/pipe-graph/internal/logging"
	"github.com/connormcn37/pipe-graph/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <graph.yaml>",
	Short: "Export the graph visualization",
	Long: `Parses a graph definition and outputs a Mermaid diagram (graph TD)
representing its wiring, with feedback edges marked by their one-tick delay.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := cli.LoadEngine(args[0], cli.BuildOptions{}, logging.NewNop())
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(engine.Inspect()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
