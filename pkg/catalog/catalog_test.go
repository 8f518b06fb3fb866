package catalog_test

import (
	"testing"

	"github.com/aretw0/handshake"
	"github.com/aretw0/handshake/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_MatchEngineVerdicts(t *testing.T) {
	engine, err := handshake.New()
	require.NoError(t, err)

	cat := catalog.Examples()
	require.NotEmpty(t, cat.ValidSequences)
	require.NotEmpty(t, cat.InvalidSequences)

	for _, ex := range cat.ValidSequences {
		t.Run(ex.Name, func(t *testing.T) {
			res := engine.Verify(ex.Packets)
			assert.True(t, res.Valid, "expected valid, got: %s", res.Message)
			assert.Len(t, res.Steps, len(ex.Packets))
		})
	}

	for _, ex := range cat.InvalidSequences {
		t.Run(ex.Name, func(t *testing.T) {
			res := engine.Verify(ex.Packets)
			assert.False(t, res.Valid)
			assert.Len(t, res.Steps, len(ex.Packets))
		})
	}
}
