package dsl

import "github.com/aretw0/handshake/pkg/protocol"

// StateBuilder provides a fluent API for a state's outgoing transitions.
type StateBuilder struct {
	from    protocol.State
	builder *Builder
}

// On adds a transition from this state on the given symbol.
func (s *StateBuilder) On(sym protocol.Symbol, to protocol.State) *StateBuilder {
	s.builder.rules = append(s.builder.rules, protocol.Rule{
		From: s.from,
		On:   sym,
		To:   to,
	})
	return s
}

// State switches to defining another state's transitions.
func (s *StateBuilder) State(from protocol.State) *StateBuilder {
	return s.builder.State(from)
}

// StartAt overrides the start state.
func (s *StateBuilder) StartAt(state protocol.State) *Builder {
	return s.builder.StartAt(state)
}

// Accept adds states to the accepting set.
func (s *StateBuilder) Accept(states ...protocol.State) *Builder {
	return s.builder.Accept(states...)
}

// Build compiles the rules into a validated table.
func (s *StateBuilder) Build() (*protocol.Table, error) {
	return s.builder.Build()
}
