package main

import (
	"fmt"
	"os"

	"github.com/aretw0/handshake/internal/validator"
	"github.com/aretw0/handshake/pkg/tabledef"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <table.yaml>",
	Short: "Check a transition table for consistency",
	Long: `Loads a YAML transition table and reports accepting states that can
never be reached from the start state, plus states no input sequence
visits.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, err := tabledef.Load(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		if err := validator.ValidateTable(table); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		for _, s := range validator.UnreachableStates(table) {
			fmt.Printf("Warning: state '%s' is unreachable\n", s)
		}

		fmt.Println("Table is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
