package trends

import (
	"testing"
	"time"
	"trendwire/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestEnrich_AttachesArticles(t *testing.T) {
	published := time.Date(2026, time.February, 26, 10, 0, 0, 0, time.UTC)
	articles := []model.Article{
		{ID: "a", Title: "A", Link: "https://example.com/a", Summary: "About A", Published: &published, Source: "Feed"},
	}
	final := []model.FinalTrend{{TrendName: "T1", Explanation: "E", RelevantArticles: []string{"A"}}}

	got := Enrich(final, articles)

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "T1", got[0].TrendName)
	assert.Equal(t, "E", got[0].Explanation)
	assert.Equal(t, articles[0], got[0].RelevantArticles[0])
}

func TestEnrich_StubsMissingTitles(t *testing.T) {
	articles := makeArticles("A", "B")
	final := []model.FinalTrend{{TrendName: "T1", RelevantArticles: []string{"B", "Missing", "A"}}}

	got := Enrich(final, articles)

	refs := got[0].RelevantArticles
	assert.Equal(t, 3, len(refs))
	assert.Equal(t, "B", refs[0].Title)
	assert.Equal(t, model.StubArticle("Missing"), refs[1])
	assert.Equal(t, "A", refs[2].Title)

	stub := refs[1]
	assert.Equal(t, model.NotFoundLink, stub.Link)
	assert.Equal(t, model.UnknownSource, stub.Source)
	assert.Equal(t, true, stub.Published == nil)
}

func TestEnrich_DuplicateTitleLastWins(t *testing.T) {
	articles := []model.Article{
		{Title: "Same", Link: "https://first.example.com"},
		{Title: "Same", Link: "https://second.example.com"},
	}
	final := []model.FinalTrend{{TrendName: "T", RelevantArticles: []string{"Same"}}}

	got := Enrich(final, articles)

	assert.Equal(t, "https://second.example.com", got[0].RelevantArticles[0].Link)
}

func TestEnrich_PreservesCountAndIsIdempotent(t *testing.T) {
	articles := makeArticles("A", "B", "C")
	final := []model.FinalTrend{
		{TrendName: "T1", RelevantArticles: []string{"A", "A", "Z"}},
		{TrendName: "T2", RelevantArticles: []string{}},
		{TrendName: "T3", RelevantArticles: []string{"C"}},
	}

	first := Enrich(final, articles)
	second := Enrich(final, articles)

	assert.Equal(t, first, second)
	assert.Equal(t, len(final), len(first))
	for i := range final {
		assert.Equal(t, len(final[i].RelevantArticles), len(first[i].RelevantArticles))
	}
	assert.Equal(t, []string{"A", "A", "Z"}, final[0].RelevantArticles)
}

func TestEnrich_Empty(t *testing.T) {
	got := Enrich(nil, makeArticles("A"))
	assert.Equal(t, 0, len(got))
	assert.NotEqual(t, nil, got)
}
