package taste

import (
	"context"
	"strings"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const (
	// maxEntitiesPerRetrieval caps how many entity names one retrieval fans
	// out to; each entity costs up to len(variants) upstream searches.
	maxEntitiesPerRetrieval = 3

	// searchTake is the page size requested per variant search
	searchTake = 5
)

// defaultSeedTerms backs basic retrieval when the conversation has produced
// no usable context yet.
var defaultSeedTerms = []string{"indie", "minimalist", "streetwear"}

func brandVariants(entity string) []string {
	return []string{
		entity,
		entity + " brand",
		entity + " fashion",
		entity + " lifestyle",
	}
}

func placeVariants(entity string) []string {
	return []string{
		entity,
		entity + " destination",
		entity + " travel",
		entity + " city",
	}
}

// collectResults walks the first entities and, for each, tries the ordered
// query variants until one yields at least one structurally valid result.
// An entity whose variants all fail or return nothing contributes zero raw
// results; that is not an error. Only context cancellation aborts.
func (c *client) collectResults(ctx context.Context, entities []string, variants func(string) []string) ([]RawResult, error) {
	logger := logging.From(ctx)

	var collected []RawResult
	for i, entity := range entities {
		if i >= maxEntitiesPerRetrieval {
			break
		}
		if entity == "" {
			continue
		}

		for _, query := range variants(entity) {
			results, err := c.Search(ctx, query, searchTake)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				logger.Debug("search variant failed, trying next", "query", query, "error", err.Error())
				continue
			}

			valid := false
			for _, r := range results {
				if r.Valid() {
					valid = true
					break
				}
			}
			if !valid {
				continue
			}

			collected = append(collected, results...)
			break
		}
	}

	return collected, nil
}

func (c *client) recommend(ctx context.Context, entities []string, variants func(string) []string, limit int) ([]model.RecommendationItem, error) {
	collected, err := c.collectResults(ctx, entities, variants)
	if err != nil {
		return nil, err
	}
	return rankAndFilter(collected, nil, limit), nil
}

// RecommendBrands retrieves brand suggestions for the first entities
func (c *client) RecommendBrands(ctx context.Context, entities []string) ([]model.RecommendationItem, error) {
	return c.recommend(ctx, entities, brandVariants, legacyLimit)
}

// RecommendPlaces retrieves place suggestions for the first entities
func (c *client) RecommendPlaces(ctx context.Context, entities []string) ([]model.RecommendationItem, error) {
	return c.recommend(ctx, entities, placeVariants, legacyLimit)
}

// recommendSet retrieves brands and places for one term list. The two lookups
// run concurrently; the shared rate limiter serializes the wire.
func (c *client) recommendSet(ctx context.Context, terms []string, limit int) (*model.RecommendationSet, error) {
	set := model.NewRecommendationSet()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		brands, err := c.recommend(egCtx, terms, brandVariants, limit)
		if err != nil {
			return err
		}
		set.Brands = brands
		return nil
	})
	eg.Go(func() error {
		places, err := c.recommend(egCtx, terms, placeVariants, limit)
		if err != nil {
			return err
		}
		set.Places = places
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// RecommendBasic serves the opening of a conversation, before any entity has
// been accumulated. It falls back to fixed seed terms when the context string
// is empty so the user always sees something.
func (c *client) RecommendBasic(ctx context.Context, conversationContext string) (*model.RecommendationSet, error) {
	terms := splitContext(conversationContext)
	if len(terms) == 0 {
		terms = defaultSeedTerms
	}
	return c.recommendSet(ctx, terms, richLimit)
}

// RecommendContextual serves a partial profile using its flattened terms
func (c *client) RecommendContextual(ctx context.Context, terms []string, conversationContext string) (*model.RecommendationSet, error) {
	if len(terms) == 0 {
		terms = splitContext(conversationContext)
	}
	return c.recommendSet(ctx, terms, richLimit)
}

// RecommendComprehensive serves a complete profile from its narrative string
// ("Category: v1, v2" segments joined by " | ").
func (c *client) RecommendComprehensive(ctx context.Context, narrative string) (*model.RecommendationSet, error) {
	return c.recommendSet(ctx, narrativeTerms(narrative), richLimit)
}

// ComputeMatch issues a lightweight search per entity (up to 3); an entity
// counts as shared when its search returns at least one result. The affinity
// is a deliberately coarse step function over the shared count, not a
// similarity metric.
func (c *client) ComputeMatch(ctx context.Context, entities []string) (*model.MatchResult, error) {
	logger := logging.From(ctx)

	var shared []string
	for i, entity := range entities {
		if i >= maxEntitiesPerRetrieval {
			break
		}
		if entity == "" {
			continue
		}

		results, err := c.Search(ctx, entity, 2)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Debug("match search failed, entity not counted", "entity", entity, "error", err.Error())
			continue
		}
		if len(results) > 0 {
			shared = append(shared, entity)
		}
	}

	affinity, cluster := affinityFor(len(shared))
	return &model.MatchResult{
		AffinityPercentage: affinity,
		SharedInterests:    shared,
		AudienceCluster:    cluster,
	}, nil
}

// affinityFor maps a shared-interest count to the discrete affinity steps.
// This is a coarse heuristic, not a similarity metric.
func affinityFor(sharedCount int) (int, string) {
	switch {
	case sharedCount >= 3:
		return 90, "Cultural Enthusiast"
	case sharedCount == 2:
		return 85, "Cultural Explorer"
	default:
		return 75, "Cultural Curious"
	}
}

func splitContext(conversationContext string) []string {
	var terms []string
	for _, part := range strings.Split(conversationContext, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			terms = append(terms, trimmed)
		}
	}
	return terms
}

// narrativeTerms flattens a profile narrative back into search terms
func narrativeTerms(narrative string) []string {
	var terms []string
	for _, segment := range strings.Split(narrative, " | ") {
		values := segment
		if idx := strings.Index(segment, ": "); idx >= 0 {
			values = segment[idx+2:]
		}
		terms = append(terms, splitContext(values)...)
	}
	return terms
}
