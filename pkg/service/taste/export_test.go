package taste

// Export internal helpers for testing

var (
	RankAndFilter  = rankAndFilter
	AffinityFor    = affinityFor
	NarrativeTerms = narrativeTerms
	SplitContext   = splitContext
	BrandVariants  = brandVariants
	PlaceVariants  = placeVariants
	QualityScore   = qualityScore
)
