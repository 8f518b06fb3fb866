package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/handshake/pkg/protocol"
)

// RunOverlay contains dynamic run data to visualize on the diagram.
type RunOverlay struct {
	VisitedStates []protocol.State
	CurrentState  protocol.State
	Failed        bool
}

// OverlayFromResult derives an overlay from a verification result, so a
// rendered diagram can highlight the path a run took and where it died.
func OverlayFromResult(res protocol.VerifyResult) *RunOverlay {
	overlay := &RunOverlay{CurrentState: res.FinalState, Failed: !res.Valid}
	for _, step := range res.Steps {
		overlay.VisitedStates = append(overlay.VisitedStates, step.From, step.To)
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart from the automaton
// description. It applies semantic styling:
// - Start state: ((Circle))
// - Accepting states: ([Stadium])
// - ERROR: styled via classDef
// Overlay styles (Visited/Current) are applied if provided.
func GenerateMermaid(desc protocol.Description, overlay *RunOverlay) string {
	accepting := make(map[protocol.State]bool, len(desc.AcceptingStates))
	for _, s := range desc.AcceptingStates {
		accepting[s] = true
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range desc.States {
		opener, closer := "[", "]"
		switch {
		case state == desc.StartState:
			opener, closer = "((", "))"
		case accepting[state]:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", state, opener, state, closer))
	}

	for _, rule := range desc.Transitions {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", rule.From, rule.On, rule.To))
	}

	// Undefined pairs all route to ERROR; one dotted edge says so without
	// drawing every pair.
	sb.WriteString(fmt.Sprintf("    %s -.->|\"any undefined input\"| %s\n", desc.StartState, protocol.StateError))

	sb.WriteString("\n    classDef error fill:#fee2e2,stroke:#b91c1c,stroke-width:2px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s error;\n", protocol.StateError))

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#fecaca,stroke:#b91c1c,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[protocol.State]bool)
		for _, s := range overlay.VisitedStates {
			if !visitedSet[s] {
				visitedSet[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", s))
			}
		}

		currentClass := "current"
		if overlay.Failed {
			currentClass = "failed"
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", overlay.CurrentState, currentClass))
	}

	return sb.String()
}
