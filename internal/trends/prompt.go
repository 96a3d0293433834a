package trends

import (
	"fmt"
	"strings"
	"trendwire/internal/model"
)

const (
	maxSummaryChars      = 200
	maxTitlesPerTrend    = 3
	maxConsolidatedChars = 2000
)

const analysisSystemPrompt = `You are an expert geopolitical analyst covering India-United States relations.
Identify only topics that involve BOTH India and the United States. Ignore topics that concern only one of the two countries.
Respond ONLY with a valid JSON object that has a "trends" key.`

const analysisUserPromptTemplate = `From the articles below, identify topics involving BOTH India and the USA.
For each topic give a short name and the exact titles of the relevant articles, copied verbatim.

Output JSON only, no other text:
{
  "trends": [
    {
      "trend_name": "short topic name",
      "relevant_articles": ["exact article title", "exact article title"]
    }
  ]
}

Content:
%s`

const consolidationSystemPrompt = `You are an AI assistant synthesizing a report on India-US relations.
Merge duplicate or overlapping topics and keep only the top 5-10 trends.
Respond ONLY with a valid JSON object that has a "report" key.`

const consolidationUserPromptTemplate = `From the topics below, synthesize the top 5-10 trending topics about the India-USA relationship. Merge duplicates.
For each trend provide a "trend_name", a one or two sentence "explanation", and "relevant_articles" with the exact article titles listed below.

Output JSON only, no other text:
{
  "report": [
    {
      "trend_name": "trend name",
      "explanation": "why this is trending",
      "relevant_articles": ["exact article title"]
    }
  ]
}

Topics:
%s`

// truncate cuts s to at most max characters without splitting a rune.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

func formatArticlesForAnalysis(articles []model.Article) string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("Title: %s\nSummary: %s\n\n", a.Title, truncate(a.Summary, maxSummaryChars)))
	}
	return sb.String()
}

func formatTrendsForConsolidation(trends []model.PreliminaryTrend) string {
	var sb strings.Builder
	for _, t := range trends {
		titles := t.RelevantArticles
		if len(titles) > maxTitlesPerTrend {
			titles = titles[:maxTitlesPerTrend]
		}
		sb.WriteString(fmt.Sprintf("Trend: %s | Articles: %s\n", t.TrendName, strings.Join(titles, "; ")))
	}
	return truncate(sb.String(), maxConsolidatedChars)
}
