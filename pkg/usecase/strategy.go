package usecase

import "github.com/tribu-ai/tribuai/pkg/domain/model"

// Retrieval names the recommendation strategy chosen for a turn.
type Retrieval string

const (
	// RetrievalBasic uses generic seed terms when nothing is known yet
	RetrievalBasic Retrieval = "basic"

	// RetrievalContextual uses the accumulated profile terms for an early
	// or partially filled conversation
	RetrievalContextual Retrieval = "contextual"

	// RetrievalComprehensive uses the full profile narrative once the
	// conversation has depth and every category is filled
	RetrievalComprehensive Retrieval = "comprehensive"
)

// shortHistoryTurns is the history length at or below which a conversation
// still counts as early, keeping retrieval contextual even for a complete
// profile.
const shortHistoryTurns = 2

// SelectRetrieval picks the recommendation strategy for the current turn.
// Precedence: an empty profile always yields basic; a short history or an
// incomplete profile yields contextual; only a complete profile with a longer
// history yields comprehensive.
func SelectRetrieval(p model.Profile, historyLen int) Retrieval {
	if p.Empty() {
		return RetrievalBasic
	}
	if historyLen <= shortHistoryTurns || !p.Complete() {
		return RetrievalContextual
	}
	return RetrievalComprehensive
}
