package model

import "github.com/tribu-ai/tribuai/pkg/domain/types"

// TurnResult is the complete output of one conversation turn. The shape is
// always fully populated: a failed node degrades its own field to an empty or
// nil value and annotates ErrorMessage instead of aborting the turn.
type TurnResult struct {
	SessionID        types.SessionID    `json:"session_id"`
	AssistantMessage string             `json:"assistant_message"`
	CulturalProfile  *CulturalProfile   `json:"cultural_profile"`
	Recommendations  *RecommendationSet `json:"recommendations"`
	Matching         *MatchResult       `json:"matching"`
	ProfileComplete  bool               `json:"profile_complete"`
	ErrorMessage     string             `json:"error_message,omitempty"`
}
