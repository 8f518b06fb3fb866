package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/handshake/pkg/protocol"
)

// VerifyReport builds a markdown report for a verification result,
// suitable for rendering with NewRenderer.
func VerifyReport(res protocol.VerifyResult) string {
	var sb strings.Builder

	if res.Valid {
		sb.WriteString("# Handshake accepted\n\n")
	} else {
		sb.WriteString("# Handshake rejected\n\n")
	}
	sb.WriteString(fmt.Sprintf("%s\n\n", res.Message))
	sb.WriteString(fmt.Sprintf("Final state: **%s**\n\n", res.FinalState))

	if len(res.Steps) == 0 {
		return sb.String()
	}

	sb.WriteString("| # | Input | From | To | Result |\n")
	sb.WriteString("|---|-------|------|----|--------|\n")
	for i, step := range res.Steps {
		result := "rejected"
		if step.Accepted {
			result = "ok"
		}
		sb.WriteString(fmt.Sprintf("| %d | `%s` | %s | %s | %s |\n",
			i+1, step.Input, step.From, step.To, result))
	}

	return sb.String()
}
