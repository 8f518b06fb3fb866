package protocol

// Rule is one entry of the transition table.
type Rule struct {
	From State  `json:"from"`
	On   Symbol `json:"symbol"`
	To   State  `json:"to"`
}

type transitionKey struct {
	from State
	on   Symbol
}

// Table is the immutable transition function of the automaton. It is
// constructed once, validated, and safely shared across sessions without
// synchronization because it is never mutated afterwards.
type Table struct {
	rules     []Rule
	index     map[transitionKey]State
	start     State
	accepting map[State]bool
}

// NewTable builds a validated transition table. It fails with *ConfigError
// if a rule references a state or symbol outside the declared sets, defines
// an exit out of the absorbing ERROR state, duplicates a (state, symbol)
// pair, or if the start or an accepting state is out of range.
func NewTable(rules []Rule, start State, accepting []State) (*Table, error) {
	if !start.Valid() {
		return nil, configErrorf("start state %d is not in the state set", uint8(start))
	}

	t := &Table{
		rules:     make([]Rule, 0, len(rules)),
		index:     make(map[transitionKey]State, len(rules)),
		start:     start,
		accepting: make(map[State]bool, len(accepting)),
	}

	for _, r := range rules {
		switch {
		case !r.From.Valid():
			return nil, configErrorf("rule references unknown source state %d", uint8(r.From))
		case !r.To.Valid():
			return nil, configErrorf("rule references unknown target state %d", uint8(r.To))
		case !r.On.Valid():
			return nil, configErrorf("rule references unknown symbol %d", uint8(r.On))
		case r.From == StateError:
			return nil, configErrorf("rule %s --%s--> %s leaves the absorbing ERROR state", r.From, r.On, r.To)
		}

		key := transitionKey{from: r.From, on: r.On}
		if prev, exists := t.index[key]; exists {
			return nil, configErrorf("duplicate rule for (%s, %s): %s and %s", r.From, r.On, prev, r.To)
		}
		t.index[key] = r.To
		t.rules = append(t.rules, r)
	}

	for _, a := range accepting {
		if !a.Valid() {
			return nil, configErrorf("accepting state %d is not in the state set", uint8(a))
		}
		if a == StateError {
			return nil, configErrorf("the ERROR state cannot be accepting")
		}
		t.accepting[a] = true
	}

	return t, nil
}

// DefaultTable returns the canonical handshake table: the server path
// CLOSED -> LISTEN -> SYN_RECEIVED -> ESTABLISHED and the client path
// CLOSED -> SYN_SENT -> ESTABLISHED. All other pairs are undefined.
func DefaultTable() *Table {
	t, err := NewTable([]Rule{
		{From: StateClosed, On: SymbolListen, To: StateListen},
		{From: StateListen, On: SymbolSyn, To: StateSynReceived},
		{From: StateSynReceived, On: SymbolAck, To: StateEstablished},
		{From: StateClosed, On: SymbolSyn, To: StateSynSent},
		{From: StateSynSent, On: SymbolSynAck, To: StateEstablished},
	}, StateClosed, []State{StateEstablished})
	if err != nil {
		// The canonical table is a compile-time constant in spirit.
		panic(err)
	}
	return t
}

// Next is the transition function as a total mapping over the enumerated
// domain: the second return value is false when no rule is defined for the
// pair, a first-class outcome rather than a missing-key fault.
func (t *Table) Next(from State, on Symbol) (State, bool) {
	to, ok := t.index[transitionKey{from: from, on: on}]
	return to, ok
}

// Rules returns the table entries in construction order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Start returns the designated start state.
func (t *Table) Start() State {
	return t.start
}

// Accepting reports whether s is an accepting state.
func (t *Table) Accepting(s State) bool {
	return t.accepting[s]
}

// AcceptingStates returns the accepting set in state declaration order.
func (t *Table) AcceptingStates() []State {
	out := make([]State, 0, len(t.accepting))
	for _, s := range States() {
		if t.accepting[s] {
			out = append(out, s)
		}
	}
	return out
}
