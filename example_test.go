package handshake_test

import (
	"fmt"
	"log"

	"github.com/aretw0/handshake"
	"github.com/aretw0/handshake/pkg/dsl"
	"github.com/aretw0/handshake/pkg/protocol"
)

// ExampleEngine_Verify demonstrates verifying a full packet sequence in
// one call. The whole sequence is consumed even if a step is rejected.
func ExampleEngine_Verify() {
	engine, err := handshake.New()
	if err != nil {
		log.Fatal(err)
	}

	res := engine.Verify([]string{"LISTEN", "SYN", "ACK"})
	fmt.Println(res.Valid)
	fmt.Println(res.FinalState)
	fmt.Println(res.Message)

	// Output:
	// true
	// ESTABLISHED
	// valid TCP handshake (server side)
}

// ExampleEngine_Step demonstrates driving a session one transition at a
// time. Every input, accepted or not, leaves a record in the history.
func ExampleEngine_Step() {
	engine, err := handshake.New()
	if err != nil {
		log.Fatal(err)
	}

	sess := engine.NewSession()
	for _, input := range []string{"SYN", "ACK"} {
		rec := engine.Step(sess, input)
		fmt.Printf("%s accepted=%v\n", input, rec.Accepted)
	}
	fmt.Println(sess.CurrentState)

	// Output:
	// SYN accepted=true
	// ACK accepted=false
	// ERROR
}

// ExampleNew_withTable demonstrates running the engine on a custom
// transition table built with the dsl package.
func ExampleNew_withTable() {
	table, err := dsl.New().
		State(protocol.StateClosed).
		On(protocol.SymbolSyn, protocol.StateSynSent).
		State(protocol.StateSynSent).
		On(protocol.SymbolSynAck, protocol.StateEstablished).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := handshake.New(handshake.WithTable(table))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(engine.Verify([]string{"SYN", "SYN_ACK"}).Valid)

	// Output:
	// true
}
