package model

// RecommendationItem is one ranked suggestion from the taste-graph service.
// Produced fresh per retrieval; not cached across calls.
type RecommendationItem struct {
	Name        string   `json:"name"`
	EntityID    string   `json:"entity_id"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// RecommendationSet groups the per-turn recommendation payload
type RecommendationSet struct {
	Brands []RecommendationItem `json:"brands"`
	Places []RecommendationItem `json:"places"`
}

// NewRecommendationSet returns an empty set with non-nil slices so the turn
// output always has a complete shape.
func NewRecommendationSet() *RecommendationSet {
	return &RecommendationSet{
		Brands: []RecommendationItem{},
		Places: []RecommendationItem{},
	}
}

// Clone returns a deep copy of the recommendation set
func (s *RecommendationSet) Clone() *RecommendationSet {
	if s == nil {
		return nil
	}
	copied := &RecommendationSet{
		Brands: make([]RecommendationItem, len(s.Brands)),
		Places: make([]RecommendationItem, len(s.Places)),
	}
	copy(copied.Brands, s.Brands)
	copy(copied.Places, s.Places)
	return copied
}

// MatchResult is the coarse audience-affinity summary computed once the
// profile is complete.
type MatchResult struct {
	AffinityPercentage int      `json:"affinity_percentage"`
	SharedInterests    []string `json:"shared_interests"`
	AudienceCluster    string   `json:"audience_cluster"`
}

// Clone returns a copy of the match result
func (m *MatchResult) Clone() *MatchResult {
	if m == nil {
		return nil
	}
	copied := &MatchResult{
		AffinityPercentage: m.AffinityPercentage,
		AudienceCluster:    m.AudienceCluster,
		SharedInterests:    make([]string, len(m.SharedInterests)),
	}
	copy(copied.SharedInterests, m.SharedInterests)
	return copied
}
