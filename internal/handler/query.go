package handler

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryParam is an integer query parameter with a default and an allowed range.
// Missing or unparsable values take the default; out-of-range values are clamped.
type queryParam struct {
	name         string
	defaultValue int
	min          int
	max          int
}

var (
	hoursBackParam = queryParam{name: "hours_back", defaultValue: 72, min: 1, max: 168}
	batchSizeParam = queryParam{name: "batch_size", defaultValue: 15, min: 10, max: 20}
	limitParam     = queryParam{name: "limit", defaultValue: 10, min: 1, max: 100}
	offsetParam    = queryParam{name: "offset", defaultValue: 0, min: 0, max: math.MaxInt32}
)

func (p queryParam) read(c *gin.Context) int {
	raw := c.Query(p.name)
	if raw == "" {
		return p.defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", p.name, "value", raw, "default", p.defaultValue)
		return p.defaultValue
	}

	switch {
	case value < p.min:
		slog.Warn("query parameter below range, clamping", "param", p.name, "value", value, "min", p.min)
		return p.min
	case value > p.max:
		slog.Warn("query parameter above range, clamping", "param", p.name, "value", value, "max", p.max)
		return p.max
	}
	return value
}
