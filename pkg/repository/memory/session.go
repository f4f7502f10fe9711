package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.Session
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[types.SessionID]*model.Session),
	}
}

func (r *sessionRepository) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("sessionID", id))
	}

	return session.Clone(), nil
}

func (r *sessionRepository) GetOrCreate(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[id]; exists {
		return session.Clone(), nil
	}

	created := model.NewSession(id)
	r.sessions[id] = created.Clone()
	return created, nil
}

func (r *sessionRepository) Put(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return goerr.New("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := session.Clone()
	stored.UpdatedAt = time.Now().UTC()
	r.sessions[session.ID] = stored
	return nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, s.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}
