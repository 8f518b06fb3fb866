/*
Package handshake is a deterministic finite automaton (DFA) engine that
models the TCP three-way-handshake protocol and verifies whether a
sequence of symbolic packet events constitutes a valid run.

It implements a small, replayable automaton: a fixed transition table over
a closed state set and alphabet, an explicit absorbing ERROR state, and an
append-only per-session history that lets callers reconstruct a run step
by step. Malformed input is expected input: a bad symbol or an undefined
transition is reported as a rejected step, never raised as an error.

# Concept

The engine is the sole source of truth for current state and history.
Everything around it (HTTP API, MCP server, CLI, diagram rendering) is a
thin shell: it calls one of four operations (step, verify, reset,
describe) and renders the structured result. The transition table is
immutable and shared; each verification request owns its own Session.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/handshake"
	)

	func main() {
		engine, err := handshake.New()
		if err != nil {
			log.Fatal(err)
		}

		res := engine.Verify([]string{"LISTEN", "SYN", "ACK"})
		fmt.Println(res.Valid, res.FinalState, res.Message)

		for _, step := range res.Steps {
			fmt.Printf("%s --[%s]--> %s\n", step.From, step.Input, step.To)
		}
	}
*/
package handshake
