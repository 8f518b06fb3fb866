package dsl

import (
	"github.com/aretw0/handshake/pkg/protocol"
)

// Builder manages the table construction.
type Builder struct {
	rules     []protocol.Rule
	start     protocol.State
	startSet  bool
	accepting []protocol.State
}

// New creates a new table builder. The start state defaults to CLOSED
// and the accepting set to ESTABLISHED unless overridden.
func New() *Builder {
	return &Builder{}
}

// State begins defining the outgoing transitions of a state.
func (b *Builder) State(from protocol.State) *StateBuilder {
	return &StateBuilder{from: from, builder: b}
}

// StartAt overrides the start state.
func (b *Builder) StartAt(s protocol.State) *Builder {
	b.start = s
	b.startSet = true
	return b
}

// Accept adds states to the accepting set.
func (b *Builder) Accept(states ...protocol.State) *Builder {
	b.accepting = append(b.accepting, states...)
	return b
}

// Build compiles the rules into a validated table.
func (b *Builder) Build() (*protocol.Table, error) {
	start := b.start
	if !b.startSet {
		start = protocol.StateClosed
	}
	accepting := b.accepting
	if len(accepting) == 0 {
		accepting = []protocol.State{protocol.StateEstablished}
	}
	return protocol.NewTable(b.rules, start, accepting)
}
