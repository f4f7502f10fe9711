package taste

import (
	"context"
	"errors"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
)

// Sentinel errors for the taste-graph client
var (
	// ErrMissingCredential means the API key is absent. Raised at client
	// construction, never per call.
	ErrMissingCredential = errors.New("taste-graph API credential is missing")

	// ErrUpstream means a single search call failed on transport or with a
	// non-2xx status. Recoverable at the call site: try the next query
	// variant or return an empty list.
	ErrUpstream = errors.New("taste-graph upstream request failed")
)

// Service provides interface to the taste-graph search API. The upstream is
// treated as a noisy, rate-limited, occasionally-unavailable oracle: empty
// recommendation lists are a valid terminal outcome, not an error.
type Service interface {
	// Search issues one rate-limited search request
	Search(ctx context.Context, query string, limit int) ([]RawResult, error)

	// RecommendBrands retrieves brand suggestions for the given entity names
	RecommendBrands(ctx context.Context, entities []string) ([]model.RecommendationItem, error)

	// RecommendPlaces retrieves place suggestions for the given entity names
	RecommendPlaces(ctx context.Context, entities []string) ([]model.RecommendationItem, error)

	// RecommendBasic retrieves suggestions with no accumulated profile yet
	RecommendBasic(ctx context.Context, conversationContext string) (*model.RecommendationSet, error)

	// RecommendContextual retrieves suggestions for a partial profile
	RecommendContextual(ctx context.Context, terms []string, conversationContext string) (*model.RecommendationSet, error)

	// RecommendComprehensive retrieves suggestions from a full profile narrative
	RecommendComprehensive(ctx context.Context, narrative string) (*model.RecommendationSet, error)

	// ComputeMatch computes the audience affinity summary for the given entities
	ComputeMatch(ctx context.Context, entities []string) (*model.MatchResult, error)

	// HealthCheck reports whether the upstream API is reachable
	HealthCheck(ctx context.Context) bool
}

// RawResult is one entity returned by the upstream search endpoint. The
// upstream is inconsistent about where it puts descriptions, so both the
// top-level and the nested properties shape are decoded.
type RawResult struct {
	Name        string  `json:"name"`
	EntityID    string  `json:"entity_id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Popularity  float64 `json:"popularity"`
	Image       struct {
		URL string `json:"url"`
	} `json:"image"`
	Properties struct {
		Description string `json:"description"`
	} `json:"properties"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

// Valid reports structural validity: a result is usable only with a name and
// an opaque entity ID.
func (r RawResult) Valid() bool {
	return r.Name != "" && r.EntityID != ""
}

func (r RawResult) hasImage() bool {
	return r.Image.URL != ""
}

func (r RawResult) hasDescription() bool {
	return r.Description != "" || r.Properties.Description != ""
}

func (r RawResult) toItem() model.RecommendationItem {
	description := r.Description
	if description == "" {
		description = r.Properties.Description
	}

	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		if t.Name != "" {
			tags = append(tags, t.Name)
		}
	}

	return model.RecommendationItem{
		Name:        r.Name,
		EntityID:    r.EntityID,
		Description: description,
		ImageURL:    r.Image.URL,
		Tags:        tags,
	}
}
