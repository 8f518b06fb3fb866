package handshake_test

import (
	"testing"

	"github.com/aretw0/handshake"
	"github.com/aretw0/handshake/pkg/protocol"
)

func TestFacade_DefaultEngine(t *testing.T) {
	engine, err := handshake.New()
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}

	res := engine.Verify([]string{"LISTEN", "SYN", "ACK"})
	if !res.Valid {
		t.Errorf("Expected valid handshake, got: %s", res.Message)
	}
	if res.FinalState != protocol.StateEstablished {
		t.Errorf("Expected final state ESTABLISHED, got %s", res.FinalState)
	}

	desc := engine.Describe()
	if desc.StartState != protocol.StateClosed {
		t.Errorf("Expected start state CLOSED, got %s", desc.StartState)
	}
}

func TestFacade_SessionStepping(t *testing.T) {
	engine, err := handshake.New()
	if err != nil {
		t.Fatal(err)
	}

	sess := engine.NewSession()
	rec := engine.Step(sess, "SYN")
	if !rec.Accepted {
		t.Fatalf("Expected SYN accepted from CLOSED, got: %s", rec.Message)
	}
	if sess.CurrentState != protocol.StateSynSent {
		t.Errorf("Expected SYN_SENT, got %s", sess.CurrentState)
	}

	engine.Reset(sess)
	if sess.CurrentState != protocol.StateClosed || len(sess.History) != 0 {
		t.Error("Reset did not restore the start state with empty history")
	}
}

func TestFacade_WithRulesRejectsBadTable(t *testing.T) {
	_, err := handshake.New(handshake.WithRules(
		[]protocol.Rule{{From: protocol.StateError, On: protocol.SymbolSyn, To: protocol.StateClosed}},
		protocol.StateClosed,
		nil,
	))
	if err == nil {
		t.Fatal("Expected construction to fail for a rule leaving ERROR")
	}
}
