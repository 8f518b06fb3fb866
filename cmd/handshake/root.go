package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/handshake"
	"github.com/aretw0/handshake/internal/logging"
	"github.com/aretw0/handshake/pkg/tabledef"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "handshake",
	Short: "Handshake is a finite automaton engine for the TCP 3-way handshake",
	Long: `Handshake models the TCP connection establishment protocol as a
deterministic finite automaton. It verifies packet sequences, steps
sessions one transition at a time, and serves the engine over HTTP or MCP.`,
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
	rootCmd.PersistentFlags().String("table", "", "Path to a YAML transition table (default: built-in TCP handshake)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// newEngine builds the engine from the persistent flags, loading a custom
// transition table when --table is given.
func newEngine(cmd *cobra.Command) (*handshake.Engine, error) {
	tablePath, _ := cmd.Flags().GetString("table")

	opts := []handshake.Option{
		handshake.WithLogger(createLogger(cmd)),
	}
	if tablePath != "" {
		table, err := tabledef.Load(tablePath)
		if err != nil {
			return nil, fmt.Errorf("loading table %s: %w", tablePath, err)
		}
		opts = append(opts, handshake.WithTable(table))
	}

	return handshake.New(opts...)
}

// createLogger configures the application logger. In debug mode it writes
// to stderr so log lines stay out of the command's stdout output.
func createLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
