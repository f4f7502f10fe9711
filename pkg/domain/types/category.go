package types

import "fmt"

// Category represents one of the six fixed cultural profile categories
type Category string

const (
	CategoryMusic     Category = "music"
	CategoryArt       Category = "art"
	CategoryFashion   Category = "fashion"
	CategoryValues    Category = "values"
	CategoryPlaces    Category = "places"
	CategoryAudiences Category = "audiences"
)

// AllCategories returns all profile categories in the fixed enumeration order.
// The order matters: missing-field routing always asks for the first missing
// category in this order.
func AllCategories() []Category {
	return []Category{
		CategoryMusic,
		CategoryArt,
		CategoryFashion,
		CategoryValues,
		CategoryPlaces,
		CategoryAudiences,
	}
}

// IsValid checks if the category is one of the six fixed categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic,
		CategoryArt,
		CategoryFashion,
		CategoryValues,
		CategoryPlaces,
		CategoryAudiences:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
