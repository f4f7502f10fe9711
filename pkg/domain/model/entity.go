package model

import "github.com/tribu-ai/tribuai/pkg/domain/types"

// Entity is a named cultural interest extracted from free text. Immutable
// once created by the extractor.
type Entity struct {
	Name    string
	Type    types.EntityType
	Tags    []string
	Context string
}
