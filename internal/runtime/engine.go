package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/handshake/internal/logging"
	"github.com/aretw0/handshake/pkg/protocol"
)

// Engine is the core automaton runner. It owns the shared read-only
// transition table; all mutable state lives in the Session passed to each
// call, so a single Engine serves any number of concurrent sessions.
type Engine struct {
	table  *protocol.Table
	logger *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for per-transition debug output.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over a validated transition table.
func NewEngine(table *protocol.Table, opts ...EngineOption) *Engine {
	e := &Engine{
		table:  table,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the engine's transition table.
func (e *Engine) Table() *protocol.Table {
	return e.table
}

// NewSession creates a fresh session positioned at the start state.
func (e *Engine) NewSession() *protocol.Session {
	return protocol.NewSession(e.table.Start())
}

// Reset returns the session to the start state and clears its history.
func (e *Engine) Reset(sess *protocol.Session) {
	sess.Reset(e.table.Start())
}

// Step consumes one raw input symbol. Invalid input is a normal,
// reportable outcome: the session moves to ERROR and the step is recorded
// as rejected. Every call appends exactly one history record, keeping the
// history consistent with the current state.
func (e *Engine) Step(sess *protocol.Session, input string) protocol.TransitionRecord {
	from := sess.CurrentState

	var rec protocol.TransitionRecord
	sym, known := protocol.ParseSymbol(input)

	switch {
	case from == protocol.StateError:
		// Absorbing: no table lookup, just report.
		rec = protocol.TransitionRecord{
			Input:   input,
			From:    from,
			To:      protocol.StateError,
			Message: "automaton already in error state",
		}
	case !known:
		rec = protocol.TransitionRecord{
			Input:   input,
			From:    from,
			To:      protocol.StateError,
			Message: fmt.Sprintf("unrecognized symbol %q", input),
		}
	default:
		if to, defined := e.table.Next(from, sym); defined {
			rec = protocol.TransitionRecord{
				Input:    input,
				From:     from,
				To:       to,
				Accepted: true,
				Message:  fmt.Sprintf("transition %s --%s--> %s", from, sym, to),
			}
		} else {
			rec = protocol.TransitionRecord{
				Input:   input,
				From:    from,
				To:      protocol.StateError,
				Message: fmt.Sprintf("no transition from %s on %s", from, sym),
			}
		}
	}

	sess.CurrentState = rec.To
	sess.History = append(sess.History, rec)

	e.logger.Debug("step",
		"input", input,
		"from", from.String(),
		"to", rec.To.String(),
		"accepted", rec.Accepted,
	)

	return rec
}

// Verify resets the session and consumes the whole sequence in order. It
// deliberately does not short-circuit on failure: later symbols are still
// recorded (as rejected) so the full history is available for replay and
// visualization.
func (e *Engine) Verify(sess *protocol.Session, inputs []string) protocol.VerifyResult {
	e.Reset(sess)

	for _, input := range inputs {
		e.Step(sess, input)
	}

	steps := make([]protocol.TransitionRecord, len(sess.History))
	copy(steps, sess.History)

	rejected := sess.Rejected()
	final := sess.CurrentState
	// An empty sequence leaves the session at the start state; it is
	// valid exactly when that state is itself accepting.
	valid := !rejected && e.table.Accepting(final)

	res := protocol.VerifyResult{
		Valid:      valid,
		Steps:      steps,
		FinalState: final,
		Message:    e.verdictMessage(steps, final, valid, rejected),
	}

	e.logger.Info("sequence verified",
		"length", len(inputs),
		"final_state", final.String(),
		"valid", valid,
	)

	return res
}

// Describe returns the static table contents for rendering. Pure read.
func (e *Engine) Describe() protocol.Description {
	return protocol.Description{
		States:          protocol.States(),
		Alphabet:        protocol.Alphabet(),
		Transitions:     e.table.Rules(),
		StartState:      e.table.Start(),
		AcceptingStates: e.table.AcceptingStates(),
	}
}

func (e *Engine) verdictMessage(steps []protocol.TransitionRecord, final protocol.State, valid, rejected bool) string {
	if len(steps) == 0 {
		return "no transitions executed"
	}

	if rejected {
		for i, rec := range steps {
			if !rec.Accepted {
				return fmt.Sprintf("step %d rejected: %s", i+1, rec.Message)
			}
		}
	}

	if !valid {
		return fmt.Sprintf("incomplete handshake: final state %s is not accepting", final)
	}

	// Name the path that was matched where the run makes it obvious.
	for _, rec := range steps {
		switch rec.To {
		case protocol.StateSynReceived:
			return "valid TCP handshake (server side)"
		case protocol.StateSynSent:
			return "valid TCP handshake (client side)"
		}
	}
	return "sequence accepted"
}
