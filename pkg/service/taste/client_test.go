package taste_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) taste.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := taste.New("test-key",
		taste.WithBaseURL(srv.URL),
		taste.WithMinInterval(time.Millisecond),
	)
	gt.NoError(t, err).Required()
	return svc
}

func searchBody(results ...map[string]any) string {
	data, _ := json.Marshal(map[string]any{"results": results})
	return string(data)
}

func entity(name, id string) map[string]any {
	return map[string]any{
		"name":        name,
		"entity_id":   id,
		"description": "a description of " + name,
	}
}

func TestNew(t *testing.T) {
	t.Run("missing API key is a construction error", func(t *testing.T) {
		_, err := taste.New("")
		gt.Bool(t, errors.Is(err, taste.ErrMissingCredential)).True()
	})

	t.Run("valid key constructs a client", func(t *testing.T) {
		svc, err := taste.New("some-key")
		gt.NoError(t, err).Required()
		gt.Value(t, svc != nil).Equal(true)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends expected params and headers", func(t *testing.T) {
		var gotReq *http.Request
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotReq = r.Clone(context.Background())
			fmt.Fprint(w, searchBody(entity("Radiohead", "e1")))
		})

		results, err := svc.Search(ctx, "indie rock", 5)
		gt.NoError(t, err).Required()
		gt.Value(t, len(results)).Equal(1)
		gt.Value(t, results[0].Name).Equal("Radiohead")

		gt.Value(t, gotReq.URL.Path).Equal("/search")
		gt.Value(t, gotReq.URL.Query().Get("query")).Equal("indie rock")
		gt.Value(t, gotReq.URL.Query().Get("take")).Equal("5")
		gt.Value(t, gotReq.URL.Query().Get("page")).Equal("1")
		gt.Value(t, gotReq.URL.Query().Get("sort_by")).Equal("match")
		gt.Value(t, gotReq.Header.Get("X-Api-Key")).Equal("test-key")
		gt.Value(t, gotReq.Header.Get("User-Agent")).Equal("TribuAI/1.0.0")
	})

	t.Run("accepts the entities response shape", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"entities":[{"name":"Berlin","entity_id":"e2"}]}`)
		})

		results, err := svc.Search(ctx, "berlin", 3)
		gt.NoError(t, err).Required()
		gt.Value(t, len(results)).Equal(1)
		gt.Value(t, results[0].Name).Equal("Berlin")
	})

	t.Run("unknown response shape yields empty results", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"unexpected":true}`)
		})

		results, err := svc.Search(ctx, "anything", 3)
		gt.NoError(t, err).Required()
		gt.Value(t, len(results)).Equal(0)
	})

	t.Run("non-2xx status is an upstream error", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := svc.Search(ctx, "anything", 3)
		gt.Bool(t, errors.Is(err, taste.ErrUpstream)).True()
	})

	t.Run("serializes concurrent callers through the rate limiter", func(t *testing.T) {
		var mu sync.Mutex
		var timestamps []time.Time

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			timestamps = append(timestamps, time.Now())
			mu.Unlock()
			fmt.Fprint(w, searchBody())
		}))
		t.Cleanup(srv.Close)

		svc, err := taste.New("test-key",
			taste.WithBaseURL(srv.URL),
			taste.WithMinInterval(20*time.Millisecond),
		)
		gt.NoError(t, err).Required()

		var wg sync.WaitGroup
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = svc.Search(ctx, "q", 1)
			}()
		}
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		gt.Value(t, len(timestamps)).Equal(3)

		sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })
		// Three calls through a 20ms limiter cannot complete faster than
		// two full intervals, with some scheduling slack.
		gt.Bool(t, timestamps[2].Sub(timestamps[0]) >= 30*time.Millisecond).True()
	})
}

func TestRecommendBrands(t *testing.T) {
	ctx := context.Background()

	t.Run("first variant with valid results wins", func(t *testing.T) {
		var queries []string
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query().Get("query")
			queries = append(queries, q)
			if q == "minimalist brand" {
				fmt.Fprint(w, searchBody(entity("Acne Studios", "e1")))
				return
			}
			fmt.Fprint(w, searchBody())
		})

		items, err := svc.RecommendBrands(ctx, []string{"minimalist"})
		gt.NoError(t, err).Required()
		gt.Value(t, len(items)).Equal(1)
		gt.Value(t, items[0].Name).Equal("Acne Studios")

		// The bare term came first, then the brand variant hit; later
		// variants are not tried.
		gt.Array(t, queries).Equal([]string{"minimalist", "minimalist brand"})
	})

	t.Run("only the first three entities are queried", func(t *testing.T) {
		var mu sync.Mutex
		seen := map[string]bool{}
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			seen[r.URL.Query().Get("query")] = true
			mu.Unlock()
			fmt.Fprint(w, searchBody())
		})

		_, err := svc.RecommendBrands(ctx, []string{"a", "b", "c", "d"})
		gt.NoError(t, err).Required()

		mu.Lock()
		defer mu.Unlock()
		gt.Bool(t, seen["d"]).False()
		gt.Bool(t, seen["d brand"]).False()
	})

	t.Run("upstream failure on all variants yields empty list without error", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		})

		items, err := svc.RecommendBrands(ctx, []string{"minimalist"})
		gt.NoError(t, err).Required()
		gt.Value(t, len(items)).Equal(0)
	})
}

func TestRecommendSet(t *testing.T) {
	ctx := context.Background()

	t.Run("contextual populates brands and places", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchBody(entity("Result for "+r.URL.Query().Get("query"), r.URL.Query().Get("query"))))
		})

		set, err := svc.RecommendContextual(ctx, []string{"minimalist"}, "")
		gt.NoError(t, err).Required()
		gt.Value(t, len(set.Brands) > 0).Equal(true)
		gt.Value(t, len(set.Places) > 0).Equal(true)
	})

	t.Run("basic falls back to seed terms without context", func(t *testing.T) {
		var mu sync.Mutex
		var queries []string
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			queries = append(queries, r.URL.Query().Get("query"))
			mu.Unlock()
			fmt.Fprint(w, searchBody(entity("x", "e1")))
		})

		_, err := svc.RecommendBasic(ctx, "")
		gt.NoError(t, err).Required()

		mu.Lock()
		defer mu.Unlock()
		found := false
		for _, q := range queries {
			if q == "indie" {
				found = true
			}
		}
		gt.Bool(t, found).True()
	})
}

func TestComputeMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("all entities shared yields enthusiast", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchBody(entity("hit", "e1")))
		})

		match, err := svc.ComputeMatch(ctx, []string{"a", "b", "c"})
		gt.NoError(t, err).Required()
		gt.Value(t, match.AffinityPercentage).Equal(90)
		gt.Value(t, match.AudienceCluster).Equal("Cultural Enthusiast")
		gt.Array(t, match.SharedInterests).Equal([]string{"a", "b", "c"})
	})

	t.Run("failed searches count as not shared", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("query") == "b" {
				http.Error(w, "down", http.StatusBadGateway)
				return
			}
			fmt.Fprint(w, searchBody(entity("hit", "e1")))
		})

		match, err := svc.ComputeMatch(ctx, []string{"a", "b", "c"})
		gt.NoError(t, err).Required()
		gt.Value(t, match.AffinityPercentage).Equal(85)
		gt.Array(t, match.SharedInterests).Equal([]string{"a", "c"})
	})

	t.Run("only the first three entities are probed", func(t *testing.T) {
		var mu sync.Mutex
		var count int
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			count++
			mu.Unlock()
			fmt.Fprint(w, searchBody(entity("hit", "e1")))
		})

		_, err := svc.ComputeMatch(ctx, []string{"a", "b", "c", "d", "e"})
		gt.NoError(t, err).Required()

		mu.Lock()
		defer mu.Unlock()
		gt.Value(t, count).Equal(3)
	})

	t.Run("no entities yields curious baseline", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchBody())
		})

		match, err := svc.ComputeMatch(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, match.AffinityPercentage).Equal(75)
		gt.Value(t, match.AudienceCluster).Equal("Cultural Curious")
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("reachable upstream reports healthy", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchBody())
		})
		gt.Bool(t, svc.HealthCheck(ctx)).True()
	})

	t.Run("failing upstream reports unhealthy", func(t *testing.T) {
		svc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		})
		gt.Bool(t, svc.HealthCheck(ctx)).False()
	})
}
