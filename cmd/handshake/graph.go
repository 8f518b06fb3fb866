package main

import (
	"fmt"
	"os"

	"github.com/aretw0/handshake/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [symbols...]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the automaton's states and
transitions. When packet symbols are given, the path they take through
the automaton is highlighted in the diagram.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.RunOverlay
		if len(args) > 0 {
			overlay = graph.OverlayFromResult(engine.Verify(args))
		}

		fmt.Print(graph.GenerateMermaid(engine.Describe(), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
