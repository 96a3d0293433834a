package trends

import (
	"context"
	"errors"
	"testing"
	"time"
	"trendwire/internal/model"
	"trendwire/pkg/llm"

	"github.com/go-playground/assert/v2"
)

type fakeSource struct {
	articles  []model.Article
	hoursBack int
}

func (f *fakeSource) Fetch(ctx context.Context, hoursBack int) []model.Article {
	f.hoursBack = hoursBack
	return f.articles
}

type fakeRecorder struct {
	runs []model.Run
	err  error
}

func (f *fakeRecorder) SaveRun(run *model.Run) error {
	f.runs = append(f.runs, *run)
	return f.err
}

func newTestService(source ArticleSource, asker Asker) *Service {
	s := NewService(source, asker, time.Second)
	s.analyzer.sleep = noSleep
	return s
}

func TestRun_FullPipeline(t *testing.T) {
	source := &fakeSource{articles: makeArticles("A", "B", "C")}
	asker := &fakeAsker{replies: []any{
		`{"trends":[{"trend_name":"T1","relevant_articles":["A"]}]}`,
		llm.ErrExhausted,
		`{"report":[{"trend_name":"T1","explanation":"E","relevant_articles":["A","Ghost"]}]}`,
	}}
	recorder := &fakeRecorder{}

	report, err := newTestService(source, asker).WithRunRecorder(recorder).Run(context.Background(), Request{HoursBack: 48, BatchSize: 2})

	assert.Equal(t, nil, err)
	assert.Equal(t, 48, source.hoursBack)
	assert.Equal(t, 3, asker.calls)
	assert.Equal(t, 3, report.ArticleCount)
	assert.Equal(t, 1, report.PreliminaryCount)
	assert.Equal(t, 1, len(report.Trends))

	refs := report.Trends[0].RelevantArticles
	assert.Equal(t, "https://example.com/a", refs[0].Link)
	assert.Equal(t, model.NotFoundLink, refs[1].Link)

	assert.Equal(t, 1, len(recorder.runs))
	run := recorder.runs[0]
	assert.Equal(t, model.RunStatusCompleted, run.Status)
	assert.Equal(t, 2, run.BatchCount)
	assert.Equal(t, 1, run.TrendCount)
}

func TestRun_NoArticles(t *testing.T) {
	asker := &fakeAsker{}
	recorder := &fakeRecorder{}

	report, err := newTestService(&fakeSource{}, asker).WithRunRecorder(recorder).Run(context.Background(), Request{HoursBack: 72, BatchSize: 15})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, asker.calls)
	assert.Equal(t, 0, len(report.Trends))
	assert.NotEqual(t, nil, report.Trends)
	assert.Equal(t, model.RunStatusNoArticles, recorder.runs[0].Status)
}

func TestRun_NoPreliminaryTrends(t *testing.T) {
	source := &fakeSource{articles: makeArticles("A", "B")}
	asker := &fakeAsker{replies: []any{errors.New("down"), errors.New("down")}}

	report, err := newTestService(source, asker).Run(context.Background(), Request{HoursBack: 72, BatchSize: 1})

	assert.Equal(t, true, errors.Is(err, ErrNoPreliminaryTrends))
	assert.Equal(t, true, report == nil)
	assert.Equal(t, 2, asker.calls)
}

func TestRun_ConsolidationFails(t *testing.T) {
	source := &fakeSource{articles: makeArticles("A")}
	asker := &fakeAsker{replies: []any{
		`{"trends":[{"trend_name":"T1","relevant_articles":["A"]}]}`,
		llm.ErrExhausted,
	}}
	recorder := &fakeRecorder{err: errors.New("db down")}

	_, err := newTestService(source, asker).WithRunRecorder(recorder).Run(context.Background(), Request{HoursBack: 72, BatchSize: 10})

	assert.Equal(t, true, errors.Is(err, ErrNoReport))
	assert.Equal(t, model.RunStatusNoReport, recorder.runs[0].Status)
	assert.Equal(t, ErrNoReport.Error(), recorder.runs[0].ErrorMessage)
}

func TestRun_DefaultBatchSize(t *testing.T) {
	source := &fakeSource{articles: makeArticles("A")}
	asker := &fakeAsker{replies: []any{`{"trends":[]}`}}

	_, err := newTestService(source, asker).Run(context.Background(), Request{HoursBack: 72})

	assert.Equal(t, true, errors.Is(err, ErrNoPreliminaryTrends))
	assert.Equal(t, 1, asker.calls)
}
