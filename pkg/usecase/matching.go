package usecase

import (
	"context"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
)

// Audience matching samples the profile breadth-first rather than
// exhaustively: at most matchTermsPerCategory names per category, capped at
// matchTermsMax in total.
const (
	matchTermsPerCategory = 2
	matchTermsMax         = 12
)

// Matcher computes the audience affinity summary for a profile.
type Matcher struct {
	taste taste.Service
}

// Match probes the taste graph with a breadth-first sample of the profile and
// returns the affinity summary.
func (m *Matcher) Match(ctx context.Context, p model.Profile) (*model.MatchResult, error) {
	terms := p.Terms(matchTermsPerCategory, matchTermsMax)
	return m.taste.ComputeMatch(ctx, terms)
}
