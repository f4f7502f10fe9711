package usecase

import (
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

// fallbackEntities is substituted when entity extraction fails, so a turn can
// still make progress toward a usable profile.
func fallbackEntities() []*model.Entity {
	return []*model.Entity{
		{Name: "indie", Type: types.EntityTypeArtist},
		{Name: "electronic", Type: types.EntityTypeArtist},
		{Name: "alternative", Type: types.EntityTypeArtist},
		{Name: "minimalist", Type: types.EntityTypeArt},
		{Name: "Japanese cinema", Type: types.EntityTypeArt},
		{Name: "street art", Type: types.EntityTypeArt},
		{Name: "Berlin", Type: types.EntityTypePlace},
		{Name: "Tokyo", Type: types.EntityTypePlace},
		{Name: "Portland", Type: types.EntityTypePlace},
		{Name: "sustainable", Type: types.EntityTypeBrand},
		{Name: "streetwear", Type: types.EntityTypeBrand},
		{Name: "sustainability", Type: types.EntityTypeTag},
		{Name: "creativity", Type: types.EntityTypeTag},
		{Name: "creative professionals", Type: types.EntityTypeAudience},
		{Name: "urban millennials", Type: types.EntityTypeAudience},
	}
}
