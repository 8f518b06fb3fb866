package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/handshake/pkg/protocol"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*protocol.Session
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*protocol.Session),
	}
}

// clone copies the session so store state and caller state stay isolated,
// matching the behavior of serializing stores.
func clone(sess *protocol.Session) *protocol.Session {
	copied := &protocol.Session{CurrentState: sess.CurrentState}
	if sess.History != nil {
		copied.History = make([]protocol.TransitionRecord, len(sess.History))
		copy(copied.History, sess.History)
	}
	return copied
}

// Save persists the session in memory.
func (s *Store) Save(ctx context.Context, sessionID string, sess *protocol.Session) error {
	copied := clone(sess)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves the session from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (*protocol.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[sessionID]
	if !ok {
		return nil, protocol.ErrSessionNotFound
	}
	return clone(sess), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active session IDs in deterministic order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}
