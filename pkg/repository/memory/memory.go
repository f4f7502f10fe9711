package memory

import (
	"errors"

	"github.com/tribu-ai/tribuai/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Memory is an in-memory Repository implementation. Sessions live for the
// process lifetime; there is no durability across restarts.
type Memory struct {
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		session: newSessionRepository(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

func (m *Memory) Close() error {
	return nil
}
