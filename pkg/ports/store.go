package ports

import (
	"context"

	"github.com/aretw0/handshake/pkg/protocol"
)

// SessionStore defines the interface for persisting automaton sessions
// across requests, enabling step mode over a stateless transport.
type SessionStore interface {
	// Save persists the session for a given session ID.
	Save(ctx context.Context, sessionID string, sess *protocol.Session) error

	// Load retrieves the session for a given session ID.
	// Returns protocol.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*protocol.Session, error)

	// Delete removes the session for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
