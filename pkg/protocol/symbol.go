package protocol

import "fmt"

// Symbol is one of the fixed alphabet of packet events.
type Symbol uint8

const (
	SymbolListen Symbol = iota
	SymbolSyn
	SymbolSynAck
	SymbolAck
)

// Alphabet returns every well-formed symbol in declaration order.
func Alphabet() []Symbol {
	return []Symbol{SymbolListen, SymbolSyn, SymbolSynAck, SymbolAck}
}

func (s Symbol) String() string {
	switch s {
	case SymbolListen:
		return "LISTEN"
	case SymbolSyn:
		return "SYN"
	case SymbolSynAck:
		return "SYN_ACK"
	case SymbolAck:
		return "ACK"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is a member of the declared alphabet.
func (s Symbol) Valid() bool {
	return s <= SymbolAck
}

// ParseSymbol maps caller input to a Symbol. A false result marks a
// malformed symbol, which is distinct from a well-formed symbol with no
// defined transition. "SYN-ACK" is accepted as an alias for SYN_ACK.
func ParseSymbol(input string) (Symbol, bool) {
	if input == "SYN-ACK" {
		return SymbolSynAck, true
	}
	for _, s := range Alphabet() {
		if s.String() == input {
			return s, true
		}
	}
	return 0, false
}

// MarshalText serializes the symbol as its canonical identifier.
func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid symbol value %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a canonical identifier or its accepted alias.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, ok := ParseSymbol(string(text))
	if !ok {
		return fmt.Errorf("unknown symbol %q", string(text))
	}
	*s = parsed
	return nil
}
