// Package tabledef loads transition-table definitions from YAML documents
// and compiles them into validated protocol tables. It exists so operators
// can experiment with variant state machines (extra rules, different
// accepting sets) without recompiling.
package tabledef

import (
	"fmt"
	"os"

	"github.com/aretw0/handshake/internal/dto"
	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and compiles a table definition file.
func Load(path string) (*protocol.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table definition: %w", err)
	}
	return Parse(data)
}

// Parse compiles a YAML table definition. Identifier errors surface as
// *protocol.ConfigError, the same taxonomy as programmatic construction.
func Parse(data []byte) (*protocol.Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table definition: %w", err)
	}

	var doc dto.TableDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true, // typoed keys should not silently vanish
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("malformed table definition: %w", err)
	}

	return compile(doc)
}

func compile(doc dto.TableDocument) (*protocol.Table, error) {
	rules := make([]protocol.Rule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		from, ok := protocol.ParseState(r.From)
		if !ok {
			return nil, &protocol.ConfigError{Detail: fmt.Sprintf("unknown source state %q", r.From)}
		}
		to, ok := protocol.ParseState(r.To)
		if !ok {
			return nil, &protocol.ConfigError{Detail: fmt.Sprintf("unknown target state %q", r.To)}
		}
		sym, ok := protocol.ParseSymbol(r.Symbol)
		if !ok {
			return nil, &protocol.ConfigError{Detail: fmt.Sprintf("unknown symbol %q", r.Symbol)}
		}
		rules = append(rules, protocol.Rule{From: from, On: sym, To: to})
	}

	start := protocol.StateClosed
	if doc.Start != "" {
		parsed, ok := protocol.ParseState(doc.Start)
		if !ok {
			return nil, &protocol.ConfigError{Detail: fmt.Sprintf("unknown start state %q", doc.Start)}
		}
		start = parsed
	}

	accepting := []protocol.State{protocol.StateEstablished}
	if len(doc.Accepting) > 0 {
		accepting = accepting[:0]
		for _, name := range doc.Accepting {
			parsed, ok := protocol.ParseState(name)
			if !ok {
				return nil, &protocol.ConfigError{Detail: fmt.Sprintf("unknown accepting state %q", name)}
			}
			accepting = append(accepting, parsed)
		}
	}

	return protocol.NewTable(rules, start, accepting)
}
