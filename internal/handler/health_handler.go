package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	provider string
	database Pinger
}

// NewHealthHandler reports on the configured LLM provider and, when database
// is non-nil, on run-history database connectivity.
func NewHealthHandler(provider string, database Pinger) *HealthHandler {
	return &HealthHandler{provider: provider, database: database}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	res := gin.H{
		"status":   "healthy",
		"provider": h.provider,
		"database": "disabled",
	}

	if h.database != nil {
		if err := h.database.Ping(); err != nil {
			res["status"] = "unhealthy"
			res["database"] = "disconnected"
			c.JSON(http.StatusServiceUnavailable, res)
			return
		}
		res["database"] = "connected"
	}

	c.JSON(http.StatusOK, res)
}
