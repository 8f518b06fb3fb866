package protocol

import "fmt"

// State is one of the fixed protocol states.
type State uint8

const (
	StateClosed State = iota
	StateListen
	StateSynSent
	StateSynReceived
	StateEstablished
	// StateError is absorbing: once entered, no transition leaves it.
	StateError
)

// States returns every protocol state in declaration order.
func States() []State {
	return []State{
		StateClosed,
		StateListen,
		StateSynSent,
		StateSynReceived,
		StateEstablished,
		StateError,
	}
}

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateListen:
		return "LISTEN"
	case StateSynSent:
		return "SYN_SENT"
	case StateSynReceived:
		return "SYN_RECEIVED"
	case StateEstablished:
		return "ESTABLISHED"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is a member of the declared state set.
func (s State) Valid() bool {
	return s <= StateError
}

// ParseState maps a canonical identifier back to its State.
func ParseState(name string) (State, bool) {
	for _, s := range States() {
		if s.String() == name {
			return s, true
		}
	}
	return StateError, false
}

// MarshalText serializes the state as its canonical identifier.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid state value %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a canonical identifier. Unlike symbol parsing this
// is strict: persisted sessions only ever contain well-formed states.
func (s *State) UnmarshalText(text []byte) error {
	parsed, ok := ParseState(string(text))
	if !ok {
		return fmt.Errorf("unknown state %q", string(text))
	}
	*s = parsed
	return nil
}
