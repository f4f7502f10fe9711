package types

// EntityType represents the type assigned to an entity by the extractor.
// The extractor vocabulary is wider than the profile categories; Profile
// maps each type to its category when merging.
type EntityType string

const (
	EntityTypeArtist      EntityType = "artist"
	EntityTypeArt         EntityType = "art"
	EntityTypeBrand       EntityType = "brand"
	EntityTypePlace       EntityType = "place"
	EntityTypeDestination EntityType = "destination"
	EntityTypeTag         EntityType = "tag"
	EntityTypeAudience    EntityType = "audience"
)

// Profile category for this entity type. Returns false for types that do
// not map to any profile category; such entities are dropped on merge.
func (t EntityType) Category() (Category, bool) {
	switch t {
	case EntityTypeArtist:
		return CategoryMusic, true
	case EntityTypeArt:
		return CategoryArt, true
	case EntityTypeBrand:
		return CategoryFashion, true
	case EntityTypePlace, EntityTypeDestination:
		return CategoryPlaces, true
	case EntityTypeTag:
		return CategoryValues, true
	case EntityTypeAudience:
		return CategoryAudiences, true
	default:
		return "", false
	}
}

// String returns the string representation of the entity type
func (t EntityType) String() string {
	return string(t)
}
