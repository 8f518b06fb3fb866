package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sess := protocol.NewSession(protocol.StateClosed)
		sess.CurrentState = protocol.StateSynSent
		sess.History = append(sess.History, protocol.TransitionRecord{
			Input:    "SYN",
			From:     protocol.StateClosed,
			To:       protocol.StateSynSent,
			Accepted: true,
			Message:  "transition CLOSED --SYN--> SYN_SENT",
		})

		err := store.Save(ctx, sessionID, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, protocol.StateSynSent, loaded.CurrentState)
		require.Len(t, loaded.History, 1)
		assert.Equal(t, "SYN", loaded.History[0].Input)
		assert.True(t, loaded.History[0].Accepted)
	})

	t.Run("Load Is Isolated From Caller Mutation", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)

		loaded.CurrentState = protocol.StateError
		loaded.History = append(loaded.History, protocol.TransitionRecord{Input: "ACK"})

		fresh, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, protocol.StateSynSent, fresh.CurrentState)
		assert.Len(t, fresh.History, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, protocol.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, protocol.NewSession(protocol.StateClosed))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, protocol.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, protocol.NewSession(protocol.StateClosed))
		_ = store.Save(ctx, id2, protocol.NewSession(protocol.StateClosed))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
