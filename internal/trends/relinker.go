package trends

import "trendwire/internal/model"

// Enrich replaces every article title in the final trends with the full
// article carrying that title. Titles are matched exactly; when two articles
// share a title the later one wins. A title with no match becomes a stub so
// each trend keeps as many references as the model gave it.
func Enrich(finalTrends []model.FinalTrend, articles []model.Article) []model.EnrichedTrend {
	byTitle := make(map[string]model.Article, len(articles))
	for _, a := range articles {
		byTitle[a.Title] = a
	}

	enriched := make([]model.EnrichedTrend, 0, len(finalTrends))
	for _, t := range finalTrends {
		refs := make([]model.Article, 0, len(t.RelevantArticles))
		for _, title := range t.RelevantArticles {
			a, ok := byTitle[title]
			if !ok {
				a = model.StubArticle(title)
			}
			refs = append(refs, a)
		}

		enriched = append(enriched, model.EnrichedTrend{
			TrendName:        t.TrendName,
			Explanation:      t.Explanation,
			RelevantArticles: refs,
		})
	}
	return enriched
}
