package model

import "github.com/tribu-ai/tribuai/pkg/domain/types"

// CulturalProfile is the human-readable identity built once the per-category
// profile is complete.
type CulturalProfile struct {
	Identity    string                      `json:"identity"`
	Description string                      `json:"description"`
	Categories  map[types.Category][]string `json:"categories"`
}

// BuildCulturalProfile derives the identity label and description from the
// accumulated categories. The labels mirror the product copy: someone with
// both music and art interests reads as a creative explorer, and so on.
func BuildCulturalProfile(p Profile) *CulturalProfile {
	hasMusic := len(p[types.CategoryMusic]) > 0
	hasArt := len(p[types.CategoryArt]) > 0

	var identity, description string
	switch {
	case hasMusic && hasArt:
		identity = "Creative Cultural Explorer"
		description = "Someone who appreciates both music and visual arts, with a keen eye for style and cultural expression."
	case hasMusic:
		identity = "Music Enthusiast"
		description = "A passionate music lover with diverse cultural interests."
	case hasArt:
		identity = "Art Aficionado"
		description = "Someone who deeply appreciates visual arts and creative expression."
	default:
		identity = "Cultural Explorer"
		description = "A curious individual exploring various cultural dimensions."
	}

	categories := make(map[types.Category][]string, len(types.AllCategories()))
	for _, c := range types.AllCategories() {
		names := make([]string, len(p[c]))
		copy(names, p[c])
		categories[c] = names
	}

	return &CulturalProfile{
		Identity:    identity,
		Description: description,
		Categories:  categories,
	}
}
