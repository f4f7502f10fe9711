package types

import "github.com/google/uuid"

// SessionID identifies one conversation session. Opaque and stable for the
// session lifetime.
type SessionID string

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the session ID
func (s SessionID) String() string {
	return string(s)
}
