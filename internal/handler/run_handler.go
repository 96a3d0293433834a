package handler

import (
	"log/slog"
	"net/http"
	"time"
	"trendwire/internal/model"

	"github.com/gin-gonic/gin"
)

type RunStore interface {
	GetRuns(limit, offset int) ([]model.Run, error)
	GetRunTotal() (int, error)
}

type RunHandler struct {
	repository RunStore
}

func NewRunHandler(repository RunStore) *RunHandler {
	return &RunHandler{repository: repository}
}

func toRunResponse(r model.Run) RunResponse {
	return RunResponse{
		ID:               r.ID,
		HoursBack:        r.HoursBack,
		BatchSize:        r.BatchSize,
		ArticleCount:     r.ArticleCount,
		BatchCount:       r.BatchCount,
		PreliminaryCount: r.PreliminaryCount,
		TrendCount:       r.TrendCount,
		Status:           r.Status,
		ErrorMessage:     r.ErrorMessage,
		DurationMS:       r.DurationMS,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func (h *RunHandler) GetRuns(c *gin.Context) {
	limit := limitParam.read(c)
	offset := offsetParam.read(c)

	runs, err := h.repository.GetRuns(limit, offset)
	if err != nil {
		slog.Error("error fetching runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetRunTotal()
	if err != nil {
		slog.Error("error fetching run total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := RunsResponse{
		Runs:   make([]RunResponse, 0, len(runs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, r := range runs {
		res.Runs = append(res.Runs, toRunResponse(r))
	}

	c.JSON(http.StatusOK, res)
}
