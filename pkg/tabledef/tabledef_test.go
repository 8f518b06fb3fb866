package tabledef_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/aretw0/handshake/pkg/tabledef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalDoc = `
rules:
  - { from: CLOSED, symbol: LISTEN, to: LISTEN }
  - { from: LISTEN, symbol: SYN, to: SYN_RECEIVED }
  - { from: SYN_RECEIVED, symbol: ACK, to: ESTABLISHED }
  - { from: CLOSED, symbol: SYN, to: SYN_SENT }
  - { from: SYN_SENT, symbol: SYN_ACK, to: ESTABLISHED }
start: CLOSED
accepting: [ESTABLISHED]
`

func TestParse_CanonicalDocument(t *testing.T) {
	table, err := tabledef.Parse([]byte(canonicalDoc))
	require.NoError(t, err)

	assert.Equal(t, protocol.StateClosed, table.Start())
	assert.True(t, table.Accepting(protocol.StateEstablished))
	assert.Len(t, table.Rules(), 5)

	next, ok := table.Next(protocol.StateSynSent, protocol.SymbolSynAck)
	require.True(t, ok)
	assert.Equal(t, protocol.StateEstablished, next)
}

func TestParse_DefaultsWhenOmitted(t *testing.T) {
	table, err := tabledef.Parse([]byte(`
rules:
  - { from: CLOSED, symbol: SYN, to: SYN_SENT }
`))
	require.NoError(t, err)
	assert.Equal(t, protocol.StateClosed, table.Start())
	assert.True(t, table.Accepting(protocol.StateEstablished))
}

func TestParse_RejectsUnknownIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown state",
			doc:  "rules:\n  - { from: HALF_OPEN, symbol: SYN, to: CLOSED }\n",
		},
		{
			name: "unknown symbol",
			doc:  "rules:\n  - { from: CLOSED, symbol: FIN, to: CLOSED }\n",
		},
		{
			name: "unknown start",
			doc:  "start: NOWHERE\n",
		},
		{
			name: "unknown accepting",
			doc:  "accepting: [NOWHERE]\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tabledef.Parse([]byte(tc.doc))
			require.Error(t, err)

			var cfgErr *protocol.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := tabledef.Parse([]byte("rulez:\n  - { from: CLOSED, symbol: SYN, to: SYN_SENT }\n"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(canonicalDoc), 0644))

	table, err := tabledef.Load(path)
	require.NoError(t, err)
	assert.Len(t, table.Rules(), 5)

	_, err = tabledef.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
