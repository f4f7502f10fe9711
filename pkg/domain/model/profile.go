package model

import (
	"fmt"
	"strings"

	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

// Profile accumulates entity names per category across conversation turns.
// Every category key is always present, possibly empty. A profile only grows
// within a session: Merge unions new names into categories and never removes.
type Profile map[types.Category][]string

// NewProfile creates an empty profile with all six category keys present
func NewProfile() Profile {
	p := make(Profile, len(types.AllCategories()))
	for _, c := range types.AllCategories() {
		p[c] = []string{}
	}
	return p
}

// Merge unions the names of the given entities into the profile, grouping by
// the category each entity type maps to. Duplicate names within a category are
// dropped by exact case-sensitive match; entities with an unmapped type are
// ignored. Categories absent from the batch are left untouched. Merging the
// same batch twice yields the same profile as merging it once.
func (p Profile) Merge(entities []*Entity) {
	for _, e := range entities {
		if e == nil || e.Name == "" {
			continue
		}
		category, ok := e.Type.Category()
		if !ok {
			continue
		}
		if p.Contains(category, e.Name) {
			continue
		}
		p[category] = append(p[category], e.Name)
	}
}

// Contains reports whether the category already holds the exact name
func (p Profile) Contains(category types.Category, name string) bool {
	for _, existing := range p[category] {
		if existing == name {
			return true
		}
	}
	return false
}

// Complete reports whether all six categories have at least one entity.
// A single missing category blocks completion regardless of how rich the
// others are.
func (p Profile) Complete() bool {
	for _, c := range types.AllCategories() {
		if len(p[c]) == 0 {
			return false
		}
	}
	return true
}

// Missing returns the categories without entities, in the fixed enumeration
// order used for missing-field routing.
func (p Profile) Missing() []types.Category {
	var missing []types.Category
	for _, c := range types.AllCategories() {
		if len(p[c]) == 0 {
			missing = append(missing, c)
		}
	}
	return missing
}

// Empty reports whether no category has any entity
func (p Profile) Empty() bool {
	for _, c := range types.AllCategories() {
		if len(p[c]) > 0 {
			return false
		}
	}
	return true
}

// ContextSummary returns a short comma-joined summary of the profile for
// question prompts: the first 3 entity names across categories, taking at
// most 2 per category.
func (p Profile) ContextSummary() string {
	const maxTotal = 3
	const maxPerCategory = 2

	var names []string
	for _, c := range types.AllCategories() {
		for i, name := range p[c] {
			if i >= maxPerCategory {
				break
			}
			names = append(names, name)
			if len(names) >= maxTotal {
				return strings.Join(names, ", ")
			}
		}
	}
	return strings.Join(names, ", ")
}

// Narrative concatenates each non-empty category as "Category: v1, v2" joined
// by " | ", for comprehensive retrieval.
func (p Profile) Narrative() string {
	var parts []string
	for _, c := range types.AllCategories() {
		if len(p[c]) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", titleCase(c.String()), strings.Join(p[c], ", ")))
	}
	return strings.Join(parts, " | ")
}

// Terms flattens the profile into a list of search terms, taking at most
// perCategory names from each category in fixed order, capped at max total.
func (p Profile) Terms(perCategory, max int) []string {
	var terms []string
	for _, c := range types.AllCategories() {
		for i, name := range p[c] {
			if i >= perCategory {
				break
			}
			terms = append(terms, name)
			if len(terms) >= max {
				return terms
			}
		}
	}
	return terms
}

// Clone returns a deep copy of the profile
func (p Profile) Clone() Profile {
	copied := make(Profile, len(p))
	for _, c := range types.AllCategories() {
		names := make([]string, len(p[c]))
		copy(names, p[c])
		copied[c] = names
	}
	return copied
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
