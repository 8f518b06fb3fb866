package protocol

// VerifyResult is the complete, inspectable outcome of a whole-sequence
// verification: the step-by-step history, the final state, the verdict and
// a human-readable summary.
type VerifyResult struct {
	Valid      bool               `json:"valid"`
	Steps      []TransitionRecord `json:"steps"`
	FinalState State              `json:"final_state"`
	Message    string             `json:"message"`
}

// Description is the static shape of the automaton for rendering: state
// set, alphabet, table entries, start state and accepting set. It never
// changes with session activity.
type Description struct {
	States          []State  `json:"states"`
	Alphabet        []Symbol `json:"alphabet"`
	Transitions     []Rule   `json:"transitions"`
	StartState      State    `json:"start_state"`
	AcceptingStates []State  `json:"accepting_states"`
}
