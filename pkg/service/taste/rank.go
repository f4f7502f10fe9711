package taste

import (
	"sort"
	"strings"

	"github.com/tribu-ai/tribuai/pkg/domain/model"
)

// defaultExcludedNames filters out generic placeholder entities the upstream
// returns for category-style queries.
var defaultExcludedNames = []string{"brand", "place"}

const (
	// legacyLimit caps the brand/place retrieval paths
	legacyLimit = 3
	// richLimit caps the basic/contextual/comprehensive retrieval paths
	richLimit = 5
)

// qualityScore prefers results that give the user something to look at:
// an image outweighs a description, and upstream popularity dominates both
// when present. Missing popularity contributes nothing.
func qualityScore(r RawResult) float64 {
	var score float64
	if r.hasImage() {
		score += 2
	}
	if r.hasDescription() {
		score += 1
	}
	score += r.Popularity * 10
	return score
}

// rankAndFilter sorts raw results by quality, deduplicates by entity ID,
// drops generic placeholder names, and keeps only items with a name and at
// least one of description or image. An empty return is a valid outcome.
func rankAndFilter(items []RawResult, excludeNames []string, limit int) []model.RecommendationItem {
	if excludeNames == nil {
		excludeNames = defaultExcludedNames
	}

	sorted := make([]RawResult, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return qualityScore(sorted[i]) > qualityScore(sorted[j])
	})

	seen := make(map[string]bool, len(sorted))
	filtered := make([]model.RecommendationItem, 0, limit)

	for _, item := range sorted {
		if item.Name == "" {
			continue
		}
		if isExcludedName(item.Name, excludeNames) {
			continue
		}
		if item.EntityID != "" && seen[item.EntityID] {
			continue
		}
		if !item.hasDescription() && !item.hasImage() {
			continue
		}

		seen[item.EntityID] = true
		filtered = append(filtered, item.toItem())
		if len(filtered) >= limit {
			break
		}
	}

	return filtered
}

// isExcludedName checks the lowercase name against the excluded generic
// terms, matching exactly or partially.
func isExcludedName(name string, excludeNames []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, term := range excludeNames {
		if lowered == term || strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
