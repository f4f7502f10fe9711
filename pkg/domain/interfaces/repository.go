package interfaces

import (
	"context"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Session() SessionRepository

	Close() error
}

// SessionRepository defines the interface for Session data persistence.
// Implementations hand out deep copies: mutating a returned session has no
// effect until it is stored back with Put.
type SessionRepository interface {
	// Get retrieves a session by ID
	Get(ctx context.Context, id types.SessionID) (*model.Session, error)

	// GetOrCreate retrieves a session by ID, creating an empty one if absent
	GetOrCreate(ctx context.Context, id types.SessionID) (*model.Session, error)

	// Put stores a session, overwriting any previous state
	Put(ctx context.Context, session *model.Session) error

	// List retrieves all sessions
	List(ctx context.Context) ([]*model.Session, error)
}
