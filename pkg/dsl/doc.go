/*
Package dsl provides a fluent builder for programmatically constructing
transition tables.

It lets developers define custom automata in Go instead of external YAML
files, which is useful for tests, dynamic table generation, and IDE
type-checking.

Example usage:

	table, err := dsl.New().
		State(protocol.StateClosed).
			On(protocol.SymbolListen, protocol.StateListen).
			On(protocol.SymbolSyn, protocol.StateSynSent).
		State(protocol.StateSynSent).
			On(protocol.SymbolSynAck, protocol.StateEstablished).
		Accept(protocol.StateEstablished).
		Build()

	// The resulting table can be passed to handshake.New(handshake.WithTable(table)).
*/
package dsl
