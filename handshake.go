package handshake

import (
	"log/slog"

	"github.com/aretw0/handshake/internal/runtime"
	"github.com/aretw0/handshake/pkg/protocol"
)

// Version is the library version, reported by the CLI and the adapters.
var Version = "0.3.0"

// Engine is the high-level entry point for the handshake library.
// It wraps the internal runtime and provides a simplified API for
// consumers: batch verification, session-scoped stepping and table
// introspection.
type Engine struct {
	runtime *runtime.Engine
	table   *protocol.Table
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithTable injects a custom, pre-validated transition table.
func WithTable(table *protocol.Table) Option {
	return func(e *Engine) error {
		e.table = table
		return nil
	}
}

// WithRules builds the engine's table from raw rules. Fails with a
// *protocol.ConfigError when the rules reference unknown states or
// symbols.
func WithRules(rules []protocol.Rule, start protocol.State, accepting []protocol.State) Option {
	return func(e *Engine) error {
		table, err := protocol.NewTable(rules, start, accepting)
		if err != nil {
			return err
		}
		e.table = table
		return nil
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// New initializes an Engine. Without options it models the canonical TCP
// three-way-handshake table. A misconfigured table is the only fatal
// condition: New never returns a partially-built engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		if err := opt(eng); err != nil {
			return nil, err
		}
	}

	if eng.table == nil {
		eng.table = protocol.DefaultTable()
	}

	runtimeOpts := []runtime.EngineOption{}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}

	eng.runtime = runtime.NewEngine(eng.table, runtimeOpts...)
	return eng, nil
}

// NewSession creates an independent session positioned at the start state.
// Each concurrent verification request must own its own session; the
// shared table is read-only.
func (e *Engine) NewSession() *protocol.Session {
	return e.runtime.NewSession()
}

// Step consumes a single raw symbol against the given session.
func (e *Engine) Step(sess *protocol.Session, input string) protocol.TransitionRecord {
	return e.runtime.Step(sess, input)
}

// Reset returns the session to the start state, discarding its history.
func (e *Engine) Reset(sess *protocol.Session) {
	e.runtime.Reset(sess)
}

// Verify runs a whole sequence through a fresh session and returns the
// complete result: per-step history, final state, verdict and message.
func (e *Engine) Verify(symbols []string) protocol.VerifyResult {
	return e.runtime.Verify(e.NewSession(), symbols)
}

// VerifySession runs a whole sequence through the given session,
// resetting it first. Useful when the caller persists the session and
// wants the run replayable afterwards.
func (e *Engine) VerifySession(sess *protocol.Session, symbols []string) protocol.VerifyResult {
	return e.runtime.Verify(sess, symbols)
}

// Describe returns the static automaton shape for rendering.
func (e *Engine) Describe() protocol.Description {
	return e.runtime.Describe()
}

// StartState returns the designated start state of the engine's table.
func (e *Engine) StartState() protocol.State {
	return e.table.Start()
}
