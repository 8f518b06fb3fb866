package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/handshake/pkg/protocol"
)

// ValidateTable crawls the transition table from the start state and
// reports accepting states that can never be reached. Structural checks
// (unknown states, duplicate rules) already happen when the table is
// built; this catches tables that are well-formed but useless.
func ValidateTable(table *protocol.Table) error {
	visited := make(map[protocol.State]bool)
	queue := []protocol.State{table.Start()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, sym := range protocol.Alphabet() {
			if next, ok := table.Next(current, sym); ok && !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var errors []string
	for _, accepting := range table.AcceptingStates() {
		if !visited[accepting] {
			errors = append(errors, fmt.Sprintf("accepting state '%s' is unreachable from '%s'", accepting, table.Start()))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

// UnreachableStates lists defined states that no sequence of inputs can
// reach from the start state. ERROR is excluded since every undefined
// transition leads there implicitly.
func UnreachableStates(table *protocol.Table) []protocol.State {
	visited := make(map[protocol.State]bool)
	queue := []protocol.State{table.Start()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, sym := range protocol.Alphabet() {
			if next, ok := table.Next(current, sym); ok && !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var unreachable []protocol.State
	for _, s := range protocol.States() {
		if s == protocol.StateError || visited[s] {
			continue
		}
		unreachable = append(unreachable, s)
	}
	return unreachable
}
