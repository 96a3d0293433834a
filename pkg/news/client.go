package news

import (
	"context"
	"time"
	"trendwire/internal/model"
)

type NewsClient interface {
	Fetch(ctx context.Context, since time.Time) ([]model.Article, error)
	Name() string
}
