package protocol

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in a store.
var ErrSessionNotFound = errors.New("session not found")

// ConfigError reports a malformed transition table at construction time.
// It is the only fatal condition in the engine; protocol-level problems
// (bad symbol, undefined transition) are reported as data, not errors.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "invalid automaton configuration: " + e.Detail
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Detail: fmt.Sprintf(format, args...)}
}
