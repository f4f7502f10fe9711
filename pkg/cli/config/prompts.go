package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// PromptConfig represents the question prompt configuration loaded from a
// TOML file. Each entry overrides how the engine asks about one profile
// category.
type PromptConfig struct {
	Categories []CategoryPrompt `toml:"category"`
}

// CategoryPrompt is one per-category prompt override
type CategoryPrompt struct {
	ID       string `toml:"id"`
	Topic    string `toml:"topic"`
	Question string `toml:"question"`
}

// Validate checks if the CategoryPrompt is valid
func (c *CategoryPrompt) Validate() error {
	if _, err := types.ParseCategory(c.ID); err != nil {
		return goerr.Wrap(err, "invalid category ID")
	}
	if c.Topic == "" && c.Question == "" {
		return goerr.New("prompt entry needs a topic or a question", goerr.V("id", c.ID))
	}
	return nil
}

// Validate checks if the PromptConfig is valid
func (p *PromptConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range p.Categories {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid prompt entry")
		}
		if seen[cat.ID] {
			return goerr.New("duplicate category ID", goerr.V("id", cat.ID))
		}
		seen[cat.ID] = true
	}
	return nil
}

// Prompts holds the CLI configuration for question prompt overrides
type Prompts struct {
	filePath string
}

// Flags returns CLI flags for prompt configuration
func (p *Prompts) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "prompts",
			Usage:       "Path to question prompt configuration file (TOML)",
			Sources:     cli.EnvVars("TRIBUAI_PROMPTS"),
			Destination: &p.filePath,
		},
	}
}

// Configure loads the prompt overrides from the configured file. Returns nil
// when no file is set; the engine then uses its built-in prompts.
func (p *Prompts) Configure() (map[types.Category]usecase.CategoryPrompt, error) {
	if p.filePath == "" {
		return nil, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read prompt configuration", goerr.V("path", p.filePath))
	}

	var cfg PromptConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse prompt configuration", goerr.V("path", p.filePath))
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid prompt configuration", goerr.V("path", p.filePath))
	}

	prompts := make(map[types.Category]usecase.CategoryPrompt, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		category, err := types.ParseCategory(cat.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid category ID", goerr.V("id", cat.ID))
		}
		prompts[category] = usecase.CategoryPrompt{
			Topic:    cat.Topic,
			Question: cat.Question,
		}
	}
	return prompts, nil
}
