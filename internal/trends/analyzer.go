package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"trendwire/internal/model"
	"trendwire/pkg/llm"
)

const (
	DefaultBatchSize  = 15
	DefaultBatchPause = 10 * time.Second
)

// Asker is the slice of the LLM gateway the pipeline depends on.
type Asker interface {
	AskJSON(ctx context.Context, systemPrompt, userPrompt string) (llm.Object, error)
}

type Analyzer struct {
	asker Asker
	pause time.Duration
	sleep llm.SleepFunc
}

func NewAnalyzer(asker Asker, pause time.Duration) *Analyzer {
	return &Analyzer{asker: asker, pause: pause, sleep: llm.Sleep}
}

// Batches splits articles into contiguous slices of at most size elements,
// keeping input order. The last batch may be shorter.
func Batches(articles []model.Article, size int) [][]model.Article {
	if size < 1 {
		size = DefaultBatchSize
	}

	batches := make([][]model.Article, 0, (len(articles)+size-1)/size)
	for start := 0; start < len(articles); start += size {
		end := min(start+size, len(articles))
		batches = append(batches, articles[start:end])
	}
	return batches
}

// Analyze asks the model for preliminary trends once per batch. A batch whose
// call fails or whose answer has no usable "trends" array contributes nothing.
func (a *Analyzer) Analyze(ctx context.Context, articles []model.Article, batchSize int) []model.PreliminaryTrend {
	batches := Batches(articles, batchSize)

	var all []model.PreliminaryTrend
	for i, batch := range batches {
		slog.Info("analyzing batch", "batch", i+1, "batches", len(batches), "articles", len(batch))

		userPrompt := fmt.Sprintf(analysisUserPromptTemplate, formatArticlesForAnalysis(batch))
		obj, err := a.asker.AskJSON(ctx, analysisSystemPrompt, userPrompt)
		if err != nil {
			slog.Error("batch analysis failed", "batch", i+1, "error", err)
		} else {
			found := decodePreliminaryTrends(obj)
			slog.Info("batch analyzed", "batch", i+1, "trends", len(found))
			all = append(all, found...)
		}

		if i < len(batches)-1 {
			if err := a.sleep(ctx, a.pause); err != nil {
				slog.Warn("batch analysis interrupted", "completed", i+1, "batches", len(batches), "error", err)
				break
			}
		}
	}

	return all
}

func decodePreliminaryTrends(obj llm.Object) []model.PreliminaryTrend {
	raw, ok := obj["trends"]
	if !ok {
		slog.Warn("llm response has no trends key")
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("llm trends value is not an array", "error", err)
		return nil
	}

	trends := make([]model.PreliminaryTrend, 0, len(items))
	for _, item := range items {
		var t model.PreliminaryTrend
		if err := json.Unmarshal(item, &t); err != nil {
			slog.Warn("skipping malformed trend", "error", err)
			continue
		}
		t.TrendName = strings.TrimSpace(t.TrendName)
		if t.TrendName == "" {
			continue
		}
		if t.RelevantArticles == nil {
			t.RelevantArticles = []string{}
		}
		trends = append(trends, t)
	}
	return trends
}
