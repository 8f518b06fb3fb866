package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/handshake/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stepCmd represents the step command
var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Step through the automaton interactively",
	Long: `Starts an interactive session that feeds input symbols to the automaton
one at a time. Type a symbol (LISTEN, SYN, SYN_ACK, ACK) to execute a
transition, 'reset' to return to the start state, or 'quit' to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			tui.PrintBanner(strings.TrimSpace(versionString()))
			fmt.Println("Type a symbol to step, 'reset' to start over, 'quit' to exit.")
		}

		sess := engine.NewSession()
		scanner := bufio.NewScanner(os.Stdin)

		for {
			if interactive {
				fmt.Printf("[%s] > ", sess.CurrentState)
			}
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())

			switch strings.ToLower(input) {
			case "":
				continue
			case "quit", "exit":
				return
			case "reset":
				engine.Reset(sess)
				fmt.Printf(">>> automaton reset to %s\n", sess.CurrentState)
				continue
			}

			rec := engine.Step(sess, input)
			if rec.Accepted {
				fmt.Printf(">>> %s\n", rec.Message)
			} else {
				fmt.Printf(">>> rejected: %s\n", rec.Message)
			}
		}

		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Input error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
