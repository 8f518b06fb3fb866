package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the verifier, with the
// version tagged underneath.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String("  _                     _     _           _        ").Foreground(p.Color("#38bdf8"))
	s2 := termenv.String(" | |__   __ _ _ __   __| |___| |__   __ _| | _____ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" | '_ \\ / _` | '_ \\ / _` / __| '_ \\ / _` | |/ / _ \\").Foreground(p.Color("#2dd4bf"))
	s4 := termenv.String(" | | | | (_| | | | | (_| \\__ \\ | | | (_| |   <  __/").Foreground(p.Color("#34d399"))
	s5 := termenv.String(" |_| |_|\\__,_|_| |_|\\__,_|___/_| |_|\\__,_|_|\\_\\___|").Foreground(p.Color("#4ade80"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  TCP handshake verifier %s\n\n", version)
}
