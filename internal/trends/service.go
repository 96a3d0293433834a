package trends

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"trendwire/internal/model"
)

var (
	ErrNoPreliminaryTrends = errors.New("could not determine preliminary trends from articles")
	ErrNoReport            = errors.New("could not consolidate trends into a final report")
)

type ArticleSource interface {
	Fetch(ctx context.Context, hoursBack int) []model.Article
}

type RunRecorder interface {
	SaveRun(run *model.Run) error
}

type Request struct {
	HoursBack int
	BatchSize int
}

// Service runs the whole pipeline for one request. It holds no per-run state,
// so concurrent requests do not interfere.
type Service struct {
	source       ArticleSource
	analyzer     *Analyzer
	consolidator *Consolidator
	runs         RunRecorder
	now          func() time.Time
}

func NewService(source ArticleSource, asker Asker, batchPause time.Duration) *Service {
	return &Service{
		source:       source,
		analyzer:     NewAnalyzer(asker, batchPause),
		consolidator: NewConsolidator(asker),
		now:          time.Now,
	}
}

// WithRunRecorder records run metadata after every run. Recording is best effort.
func (s *Service) WithRunRecorder(runs RunRecorder) *Service {
	s.runs = runs
	return s
}

func (s *Service) Run(ctx context.Context, req Request) (*model.Report, error) {
	started := s.now()
	if req.BatchSize < 1 {
		req.BatchSize = DefaultBatchSize
	}

	run := &model.Run{HoursBack: req.HoursBack, BatchSize: req.BatchSize}
	defer func() {
		run.DurationMS = s.now().Sub(started).Milliseconds()
		s.record(run)
	}()

	articles := s.source.Fetch(ctx, req.HoursBack)
	run.ArticleCount = len(articles)

	report := &model.Report{
		Trends:       []model.EnrichedTrend{},
		ArticleCount: len(articles),
		HoursBack:    req.HoursBack,
		BatchSize:    req.BatchSize,
		GeneratedAt:  started.UTC(),
	}

	if len(articles) == 0 {
		slog.Info("no articles in lookback window", "hours_back", req.HoursBack)
		run.Status = model.RunStatusNoArticles
		return report, nil
	}

	run.BatchCount = len(Batches(articles, req.BatchSize))
	preliminary := s.analyzer.Analyze(ctx, articles, req.BatchSize)
	run.PreliminaryCount = len(preliminary)
	report.PreliminaryCount = len(preliminary)

	if len(preliminary) == 0 {
		run.Status = model.RunStatusNoTrends
		run.ErrorMessage = ErrNoPreliminaryTrends.Error()
		return nil, ErrNoPreliminaryTrends
	}

	final, ok := s.consolidator.Consolidate(ctx, preliminary)
	if !ok {
		run.Status = model.RunStatusNoReport
		run.ErrorMessage = ErrNoReport.Error()
		return nil, ErrNoReport
	}

	report.Trends = Enrich(final, articles)
	run.TrendCount = len(report.Trends)
	run.Status = model.RunStatusCompleted

	slog.Info("trend report ready",
		"articles", len(articles),
		"batches", run.BatchCount,
		"preliminary", len(preliminary),
		"trends", len(report.Trends),
	)
	return report, nil
}

func (s *Service) record(run *model.Run) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(run); err != nil {
		slog.Error("error saving run", "status", run.Status, "error", err)
	}
}
