package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"trendwire/internal/model"
)

type Consolidator struct {
	asker Asker
}

func NewConsolidator(asker Asker) *Consolidator {
	return &Consolidator{asker: asker}
}

// Consolidate merges all preliminary trends into the final report with a
// single model call. ok is false when there was nothing to consolidate or the
// model produced no usable report.
func (c *Consolidator) Consolidate(ctx context.Context, trends []model.PreliminaryTrend) ([]model.FinalTrend, bool) {
	if len(trends) == 0 {
		return nil, false
	}

	slog.Info("consolidating trends", "preliminary", len(trends))

	userPrompt := fmt.Sprintf(consolidationUserPromptTemplate, formatTrendsForConsolidation(trends))
	obj, err := c.asker.AskJSON(ctx, consolidationSystemPrompt, userPrompt)
	if err != nil {
		slog.Error("consolidation failed", "error", err)
		return nil, false
	}

	raw, ok := obj["report"]
	if !ok {
		slog.Warn("llm response has no report key")
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("llm report value is not an array", "error", err)
		return nil, false
	}

	report := make([]model.FinalTrend, 0, len(items))
	for _, item := range items {
		var t model.FinalTrend
		if err := json.Unmarshal(item, &t); err != nil {
			slog.Warn("skipping malformed final trend", "error", err)
			continue
		}
		if t.RelevantArticles == nil {
			t.RelevantArticles = []string{}
		}
		report = append(report, t)
	}

	slog.Info("trends consolidated", "final", len(report))
	return report, true
}
