package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping() error {
	return f.err
}

func newTestHealthRouter(h *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetHealth_NoDatabase(t *testing.T) {
	w := doGet(newTestHealthRouter(NewHealthHandler("groq/llama3-8b-8192", nil)), "/health")

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "disabled", res["database"])
	assert.Equal(t, "groq/llama3-8b-8192", res["provider"])
}

func TestGetHealth_Healthy(t *testing.T) {
	w := doGet(newTestHealthRouter(NewHealthHandler("openai", &fakePinger{})), "/health")

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "connected", res["database"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	w := doGet(newTestHealthRouter(NewHealthHandler("openai", &fakePinger{err: errors.New("DB down")})), "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
