package model

import (
	"time"

	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

// HistoryEntry is one raw user input with its timestamp
type HistoryEntry struct {
	Input     string
	Timestamp time.Time
}

// Session is the unit of conversation. It is exclusively owned and mutated by
// the conversation engine handling the session's current turn; the repository
// hands out deep copies. State lives in memory for the process lifetime of the
// session, there is no durability across restarts.
type Session struct {
	ID                  types.SessionID
	Profile             Profile
	History             []HistoryEntry
	CurrentContext      string
	ProfileComplete     bool
	LastRecommendations *RecommendationSet
	LastMatching        *MatchResult
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewSession creates a fresh session with an empty profile
func NewSession(id types.SessionID) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Profile:   NewProfile(),
		History:   []HistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendHistory records one raw input in the append-only conversation history
func (s *Session) AppendHistory(input string, at time.Time) {
	s.History = append(s.History, HistoryEntry{Input: input, Timestamp: at})
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	copied := &Session{
		ID:                  s.ID,
		Profile:             s.Profile.Clone(),
		History:             make([]HistoryEntry, len(s.History)),
		CurrentContext:      s.CurrentContext,
		ProfileComplete:     s.ProfileComplete,
		LastRecommendations: s.LastRecommendations.Clone(),
		LastMatching:        s.LastMatching.Clone(),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	copy(copied.History, s.History)
	return copied
}
