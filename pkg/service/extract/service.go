package extract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
)

//go:embed prompt/extract_system.md
var extractSystemPrompt string

// ErrExtraction means the extractor could not produce entities for a turn.
// Recoverable: the conversation engine substitutes a fixed fallback entity
// list instead of aborting the turn.
var ErrExtraction = errors.New("entity extraction failed")

// Service provides interface to the natural-language entity extractor
type Service interface {
	// Extract parses free text into cultural entities
	Extract(ctx context.Context, text string) ([]*model.Entity, error)
}

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates a new extractor with the provided LLM client
func New(llmClient gollem.LLMClient) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &client{
		llmClient: llmClient,
	}, nil
}

type llmResponse struct {
	Entities []struct {
		Name    string   `json:"name"`
		Type    string   `json:"type"`
		Tags    []string `json:"tags"`
		Context string   `json:"context"`
	} `json:"entities"`
}

// Extract runs one structured-output LLM call over the raw input
func (c *client) Extract(ctx context.Context, text string) ([]*model.Entity, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(responseSchema()),
		gollem.WithSessionSystemPrompt(extractSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrExtraction, "failed to create LLM session", goerr.V("cause", err.Error()))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(text))
	if err != nil {
		return nil, goerr.Wrap(ErrExtraction, "failed to generate content from LLM", goerr.V("cause", err.Error()))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(ErrExtraction, "LLM returned no content")
	}

	var decoded llmResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &decoded); err != nil {
		return nil, goerr.Wrap(ErrExtraction, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	entities := make([]*model.Entity, 0, len(decoded.Entities))
	for _, e := range decoded.Entities {
		if e.Name == "" || e.Type == "" {
			continue
		}
		entities = append(entities, &model.Entity{
			Name:    e.Name,
			Type:    types.EntityType(e.Type),
			Tags:    e.Tags,
			Context: e.Context,
		})
	}

	return entities, nil
}

// responseSchema creates the JSON schema for structured output
func responseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "CulturalEntityExtraction",
		Description: "Cultural entities extracted from the user's input",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"entities": {
				Type:        gollem.TypeArray,
				Description: "List of extracted cultural entities",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"name": {
							Type:        gollem.TypeString,
							Description: "The normalized entity name",
							Required:    true,
						},
						"type": {
							Type:        gollem.TypeString,
							Description: "One of: artist, art, place, destination, brand, tag, audience",
							Required:    true,
						},
						"tags": {
							Type:        gollem.TypeArray,
							Description: "Optional descriptive tags for the entity",
							Items:       &gollem.Parameter{Type: gollem.TypeString},
						},
						"context": {
							Type:        gollem.TypeString,
							Description: "Optional fragment of the input the entity came from",
						},
					},
				},
			},
		},
	}
}
