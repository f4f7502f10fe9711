package taste_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
)

func rawResult(name, id string) taste.RawResult {
	var r taste.RawResult
	r.Name = name
	r.EntityID = id
	return r
}

func TestRankAndFilter(t *testing.T) {
	t.Run("orders by quality score descending", func(t *testing.T) {
		plain := rawResult("plain", "e1")

		withImage := rawResult("with image", "e2")
		withImage.Image.URL = "https://img.example.com/a.png"

		withBoth := rawResult("with both", "e3")
		withBoth.Image.URL = "https://img.example.com/b.png"
		withBoth.Description = "a description"

		items := taste.RankAndFilter([]taste.RawResult{plain, withImage, withBoth}, nil, 10)

		// A bare result has neither description nor image and is dropped
		gt.Value(t, len(items)).Equal(2)
		gt.Value(t, items[0].Name).Equal("with both")
		gt.Value(t, items[1].Name).Equal("with image")
	})

	t.Run("popularity breaks ties", func(t *testing.T) {
		lowPop := rawResult("low", "e1")
		lowPop.Description = "desc"
		lowPop.Popularity = 0.1

		highPop := rawResult("high", "e2")
		highPop.Description = "desc"
		highPop.Popularity = 0.9

		items := taste.RankAndFilter([]taste.RawResult{lowPop, highPop}, nil, 10)
		gt.Value(t, items[0].Name).Equal("high")
		gt.Value(t, items[1].Name).Equal("low")
	})

	t.Run("dedups by entity id keeping highest ranked", func(t *testing.T) {
		first := rawResult("first", "same")
		first.Description = "desc"
		first.Popularity = 0.9

		dup := rawResult("duplicate", "same")
		dup.Description = "desc"

		items := taste.RankAndFilter([]taste.RawResult{first, dup}, nil, 10)
		gt.Value(t, len(items)).Equal(1)
		gt.Value(t, items[0].Name).Equal("first")
	})

	t.Run("excludes generic names by exact and partial match", func(t *testing.T) {
		exact := rawResult("Brand", "e1")
		exact.Description = "desc"

		partial := rawResult("Some Brand Inc", "e2")
		partial.Description = "desc"

		kept := rawResult("Acne Studios", "e3")
		kept.Description = "desc"

		items := taste.RankAndFilter([]taste.RawResult{exact, partial, kept}, []string{"brand"}, 10)
		gt.Value(t, len(items)).Equal(1)
		gt.Value(t, items[0].Name).Equal("Acne Studios")
	})

	t.Run("accepts nested description shape", func(t *testing.T) {
		nested := rawResult("nested", "e1")
		nested.Properties.Description = "from properties"

		items := taste.RankAndFilter([]taste.RawResult{nested}, nil, 10)
		gt.Value(t, len(items)).Equal(1)
		gt.Value(t, items[0].Description).Equal("from properties")
	})

	t.Run("caps the result list at limit", func(t *testing.T) {
		var results []taste.RawResult
		for _, id := range []string{"e1", "e2", "e3", "e4", "e5"} {
			r := rawResult("name "+id, id)
			r.Description = "desc"
			results = append(results, r)
		}

		items := taste.RankAndFilter(results, nil, 3)
		gt.Value(t, len(items)).Equal(3)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		items := taste.RankAndFilter(nil, nil, 5)
		gt.Value(t, len(items)).Equal(0)
	})
}

func TestQueryVariants(t *testing.T) {
	gt.Array(t, taste.BrandVariants("minimalist")).Equal([]string{
		"minimalist", "minimalist brand", "minimalist fashion", "minimalist lifestyle",
	})
	gt.Array(t, taste.PlaceVariants("Berlin")).Equal([]string{
		"Berlin", "Berlin destination", "Berlin travel", "Berlin city",
	})
}

func TestAffinityFor(t *testing.T) {
	cases := []struct {
		shared  int
		percent int
		cluster string
	}{
		{shared: 0, percent: 75, cluster: "Cultural Curious"},
		{shared: 1, percent: 75, cluster: "Cultural Curious"},
		{shared: 2, percent: 85, cluster: "Cultural Explorer"},
		{shared: 3, percent: 90, cluster: "Cultural Enthusiast"},
		{shared: 4, percent: 90, cluster: "Cultural Enthusiast"},
	}

	for _, tc := range cases {
		percent, cluster := taste.AffinityFor(tc.shared)
		gt.Value(t, percent).Equal(tc.percent)
		gt.Value(t, cluster).Equal(tc.cluster)
	}
}

func TestNarrativeTerms(t *testing.T) {
	terms := taste.NarrativeTerms("Music: Radiohead, Portishead | Places: Berlin")
	gt.Array(t, terms).Equal([]string{"Radiohead", "Portishead", "Berlin"})
}

func TestSplitContext(t *testing.T) {
	gt.Array(t, taste.SplitContext("Radiohead, Bauhaus, Berlin")).
		Equal([]string{"Radiohead", "Bauhaus", "Berlin"})
	gt.Value(t, len(taste.SplitContext(""))).Equal(0)
}
