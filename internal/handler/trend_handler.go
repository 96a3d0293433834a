package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"trendwire/internal/model"
	"trendwire/internal/trends"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "An internal server error occurred."

type TrendService interface {
	Run(ctx context.Context, req trends.Request) (*model.Report, error)
}

type TrendHandler struct {
	service TrendService
}

func NewTrendHandler(service TrendService) *TrendHandler {
	return &TrendHandler{service: service}
}

func toArticleResponse(a model.Article) ArticleResponse {
	res := ArticleResponse{
		ID:      a.ID,
		Title:   a.Title,
		Link:    a.Link,
		Summary: a.Summary,
		Source:  a.Source,
	}
	if a.Published != nil {
		published := a.Published.Format(time.RFC3339)
		res.Published = &published
	}
	return res
}

func toTrendsResponse(report *model.Report) TrendsResponse {
	res := TrendsResponse{
		Trends:           make([]TrendResponse, 0, len(report.Trends)),
		ArticleCount:     report.ArticleCount,
		PreliminaryCount: report.PreliminaryCount,
		HoursBack:        report.HoursBack,
		BatchSize:        report.BatchSize,
		GeneratedAt:      report.GeneratedAt.Format(time.RFC3339),
	}

	for _, t := range report.Trends {
		articles := make([]ArticleResponse, 0, len(t.RelevantArticles))
		for _, a := range t.RelevantArticles {
			articles = append(articles, toArticleResponse(a))
		}
		res.Trends = append(res.Trends, TrendResponse{
			TrendName:        t.TrendName,
			Explanation:      t.Explanation,
			RelevantArticles: articles,
		})
	}
	return res
}

func (h *TrendHandler) GetTrends(c *gin.Context) {
	req := trends.Request{
		HoursBack: hoursBackParam.read(c),
		BatchSize: batchSizeParam.read(c),
	}

	slog.Info("trend analysis requested", "hours_back", req.HoursBack, "batch_size", req.BatchSize, "client_ip", c.ClientIP())

	report, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, trends.ErrNoPreliminaryTrends):
			slog.Warn("trend analysis produced no preliminary trends", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not determine preliminary trends from articles."})
			return
		case errors.Is(err, trends.ErrNoReport):
			slog.Warn("trend consolidation produced no report", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not consolidate trends into a final report."})
			return
		}

		slog.Error("unexpected error running trend analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, toTrendsResponse(report))
}
