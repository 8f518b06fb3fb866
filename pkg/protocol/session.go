package protocol

// TransitionRecord captures one executed step: the raw input consumed, the
// states before and after, and whether the step was found in the table or
// forced into ERROR.
type TransitionRecord struct {
	Input    string `json:"input"`
	From     State  `json:"from_state"`
	To       State  `json:"to_state"`
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// Session is the only mutable entity of the automaton: the current state
// plus an append-only history of executed transitions. A session is owned
// by a single verification request; it is never shared.
//
// Invariant: CurrentState equals the To state of the last history record,
// or the start state when the history is empty.
type Session struct {
	CurrentState State              `json:"current_state"`
	History      []TransitionRecord `json:"history"`
}

// NewSession creates a clean session positioned at the start state.
func NewSession(start State) *Session {
	return &Session{CurrentState: start}
}

// Reset returns the session to the start state and destroys the history.
// Callers needing the prior run must have already read it.
func (s *Session) Reset(start State) {
	s.CurrentState = start
	s.History = nil
}

// Rejected reports whether any step of the run was rejected. Rejection is
// sticky: a run that ever failed can never be valid, independent of where
// it ends up.
func (s *Session) Rejected() bool {
	for _, r := range s.History {
		if !r.Accepted {
			return true
		}
	}
	return false
}
