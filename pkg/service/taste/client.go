package taste

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tribu-ai/tribuai/pkg/utils/logging"
	"github.com/tribu-ai/tribuai/pkg/utils/safe"
)

const (
	defaultBaseURL     = "https://hackathon.api.qloo.com"
	defaultTimeout     = 30 * time.Second
	defaultMinInterval = 100 * time.Millisecond

	userAgent = "TribuAI/1.0.0"
)

// client implements Service interface
type client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	limiter     *rateLimiter
	minInterval time.Duration
}

var _ Service = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the upstream base URL
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithMinInterval overrides the minimum interval between outbound requests
func WithMinInterval(interval time.Duration) Option {
	return func(c *client) {
		c.minInterval = interval
	}
}

// New creates a new taste-graph client. A missing API key is a fatal
// configuration error raised here, not per call.
func New(apiKey string, opts ...Option) (Service, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(ErrMissingCredential, "X-Api-Key is required")
	}

	c := &client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		minInterval: defaultMinInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.limiter = newRateLimiter(c.minInterval)

	return c, nil
}

// searchResponse covers both response shapes the upstream is known to emit
type searchResponse struct {
	Results  []RawResult `json:"results"`
	Entities []RawResult `json:"entities"`
}

// Search issues one GET /search request after passing the rate limiter.
// Failures are wrapped with ErrUpstream and never retried here; callers
// decide whether to try the next query variant or give up.
func (c *client) Search(ctx context.Context, query string, limit int) ([]RawResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter wait interrupted")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("take", strconv.Itoa(limit))
	params.Set("page", "1")
	params.Set("sort_by", "match")

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request", goerr.V("query", query))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(ErrUpstream, "search request failed", goerr.V("query", query), goerr.V("cause", err.Error()))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.Wrap(ErrUpstream, "search returned non-2xx status",
			goerr.V("query", query),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, goerr.Wrap(ErrUpstream, "failed to decode search response", goerr.V("query", query))
	}

	results := decoded.Results
	if len(results) == 0 && len(decoded.Entities) > 0 {
		results = decoded.Entities
	}
	if results == nil {
		logging.From(ctx).Warn("unexpected response shape from entity search", "query", query)
		results = []RawResult{}
	}

	return results, nil
}

// HealthCheck probes the upstream with a minimal search request
func (c *client) HealthCheck(ctx context.Context) bool {
	if _, err := c.Search(ctx, "test", 1); err != nil {
		logging.From(ctx).Warn("taste-graph health check failed", "error", err.Error())
		return false
	}
	return true
}
