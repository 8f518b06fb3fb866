// Package catalog holds the built-in example packet sequences used by the
// HTTP API, the CLI, and the test suite. The catalogue is static data;
// expected verdicts are asserted against the engine in tests.
package catalog

// Example is one named packet sequence with its expected verdict.
type Example struct {
	Name        string   `json:"name"`
	Packets     []string `json:"packets"`
	Description string   `json:"description"`
}

// Catalog groups the examples the way the API exposes them.
type Catalog struct {
	ValidSequences   []Example `json:"valid_sequences"`
	InvalidSequences []Example `json:"invalid_sequences"`
}

// Examples returns the built-in catalogue.
func Examples() Catalog {
	return Catalog{
		ValidSequences: []Example{
			{
				Name:        "Valid TCP Handshake (Server)",
				Packets:     []string{"LISTEN", "SYN", "ACK"},
				Description: "Server-side TCP 3-way handshake",
			},
			{
				Name:        "Valid TCP Handshake (Client)",
				Packets:     []string{"SYN", "SYN_ACK"},
				Description: "Client-side TCP handshake",
			},
		},
		InvalidSequences: []Example{
			{
				Name:        "Missing SYN",
				Packets:     []string{"LISTEN", "ACK"},
				Description: "Skips SYN packet - invalid",
			},
			{
				Name:        "Wrong Order",
				Packets:     []string{"ACK", "SYN", "LISTEN"},
				Description: "Packets in wrong order",
			},
			{
				Name:        "Invalid Input",
				Packets:     []string{"LISTEN", "INVALID", "SYN"},
				Description: "Contains invalid packet type",
			},
		},
	}
}
