package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
	"github.com/urfave/cli/v3"
)

// Taste holds configuration for the taste-graph API client
type Taste struct {
	apiKey      string
	baseURL     string
	minInterval time.Duration
}

// Flags returns CLI flags for taste-graph configuration
func (t *Taste) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "taste-api-key",
			Usage:       "API key for the taste-graph service",
			Sources:     cli.EnvVars("TRIBUAI_TASTE_API_KEY"),
			Destination: &t.apiKey,
		},
		&cli.StringFlag{
			Name:        "taste-base-url",
			Usage:       "Base URL of the taste-graph service (default endpoint when empty)",
			Sources:     cli.EnvVars("TRIBUAI_TASTE_BASE_URL"),
			Destination: &t.baseURL,
		},
		&cli.DurationFlag{
			Name:        "taste-min-interval",
			Usage:       "Minimum interval between taste-graph requests",
			Value:       100 * time.Millisecond,
			Sources:     cli.EnvVars("TRIBUAI_TASTE_MIN_INTERVAL"),
			Destination: &t.minInterval,
		},
	}
}

// LogValue returns the taste-graph configuration as a structured log value.
// The API key is never logged.
func (t Taste) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", t.apiKey != ""),
		slog.String("base_url", t.baseURL),
		slog.Duration("min_interval", t.minInterval),
	)
}

// Configure creates the taste-graph client from the configured flags. A
// missing API key is a fatal configuration error.
func (t *Taste) Configure() (taste.Service, error) {
	opts := []taste.Option{}
	if t.baseURL != "" {
		opts = append(opts, taste.WithBaseURL(t.baseURL))
	}
	if t.minInterval > 0 {
		opts = append(opts, taste.WithMinInterval(t.minInterval))
	}

	svc, err := taste.New(t.apiKey, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create taste-graph client")
	}
	return svc, nil
}
