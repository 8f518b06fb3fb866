package protocol

import (
	"encoding/json"
	"testing"
)

func TestState_RoundTrip(t *testing.T) {
	for _, s := range States() {
		parsed, ok := ParseState(s.String())
		if !ok {
			t.Fatalf("ParseState(%q) not recognized", s.String())
		}
		if parsed != s {
			t.Errorf("ParseState(%q) = %v, want %v", s.String(), parsed, s)
		}
	}

	if _, ok := ParseState("HALF_OPEN"); ok {
		t.Error("expected HALF_OPEN to be rejected")
	}
}

func TestSymbol_Parse(t *testing.T) {
	cases := []struct {
		input string
		want  Symbol
		ok    bool
	}{
		{"LISTEN", SymbolListen, true},
		{"SYN", SymbolSyn, true},
		{"SYN_ACK", SymbolSynAck, true},
		{"SYN-ACK", SymbolSynAck, true}, // legacy alias
		{"ACK", SymbolAck, true},
		{"FIN", 0, false},
		{"syn", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseSymbol(tc.input)
		if ok != tc.ok {
			t.Errorf("ParseSymbol(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseSymbol(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestState_JSON(t *testing.T) {
	data, err := json.Marshal(StateSynReceived)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"SYN_RECEIVED"` {
		t.Errorf("marshal = %s, want \"SYN_RECEIVED\"", data)
	}

	var s State
	if err := json.Unmarshal([]byte(`"ESTABLISHED"`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != StateEstablished {
		t.Errorf("unmarshal = %v, want ESTABLISHED", s)
	}

	if err := json.Unmarshal([]byte(`"NOPE"`), &s); err == nil {
		t.Error("expected error for unknown state name")
	}
}
