package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/handshake/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [symbols...]",
	Short: "Verify a packet sequence against the handshake protocol",
	Long: `Runs the given packet symbols through the automaton and reports whether
they form a valid TCP handshake. The automaton consumes the whole
sequence even after a rejection, so every step is reported.

Example:
  handshake verify LISTEN SYN ACK`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")

		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		res := engine.Verify(args)

		if jsonMode {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
				os.Exit(1)
			}
		} else {
			report := tui.VerifyReport(res)
			render := tui.NewRenderer()
			if out, err := render(report); err == nil {
				fmt.Print(out)
			} else {
				// Fall back to the raw markdown if the terminal
				// renderer cannot be set up.
				fmt.Println(report)
			}
		}

		if !res.Valid {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("json", false, "Print the result as JSON instead of a rendered report")
}
