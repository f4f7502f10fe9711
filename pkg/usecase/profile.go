package usecase

import (
	"context"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/utils/errutil"
)

// ProcessProfile runs the recommendation pipeline directly against a
// caller-supplied profile, without a session or conversation history. Used by
// clients that already know the user's interests and want a one-shot result.
// Node failures degrade the corresponding field and annotate ErrorMessage,
// matching the conversational pipeline.
func (uc *ConversationUseCase) ProcessProfile(ctx context.Context, p model.Profile) (*model.TurnResult, error) {
	profile := model.NewProfile()
	for cat, names := range p {
		if !cat.IsValid() {
			continue
		}
		for _, name := range names {
			if name == "" {
				continue
			}
			if !profile.Contains(cat, name) {
				profile[cat] = append(profile[cat], name)
			}
		}
	}

	result := &model.TurnResult{
		Recommendations: model.NewRecommendationSet(),
		ProfileComplete: profile.Complete(),
	}
	result.CulturalProfile = model.BuildCulturalProfile(profile)

	// No conversation history here, so let the profile alone pick the
	// strategy: comprehensive when complete, contextual when partial, basic
	// when empty.
	set, err := uc.retrieve(ctx, profile, profile.ContextSummary(), shortHistoryTurns+1)
	if err != nil {
		errutil.Handle(ctx, err, "recommendation retrieval failed")
		recordError(result, "recommendation retrieval failed")
		set = model.NewRecommendationSet()
	}
	result.Recommendations = set

	if uc.matcher != nil && !profile.Empty() {
		match, err := uc.matcher.Match(ctx, profile)
		if err != nil {
			errutil.Handle(ctx, err, "audience matching failed")
			recordError(result, "audience matching failed")
		} else {
			result.Matching = match
		}
	}

	return result, nil
}
