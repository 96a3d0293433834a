package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultMaxAttempts      = 3
	DefaultRateLimitBackoff = 30 * time.Second
	DefaultErrorBackoff     = 15 * time.Second
)

// ErrExhausted is returned once every attempt failed.
var ErrExhausted = errors.New("llm retries exhausted")

type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Gateway is the single point of contact with the model. It asks for a JSON
// object and retries failed attempts with a linear backoff whose step depends
// on whether the provider reported rate limiting.
type Gateway struct {
	completer        Completer
	maxAttempts      int
	rateLimitBackoff time.Duration
	errorBackoff     time.Duration
	sleep            SleepFunc
}

type GatewayOption func(*Gateway)

func WithMaxAttempts(n int) GatewayOption {
	return func(g *Gateway) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithBackoff(rateLimit, other time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.rateLimitBackoff = rateLimit
		g.errorBackoff = other
	}
}

func WithSleep(sleep SleepFunc) GatewayOption {
	return func(g *Gateway) {
		g.sleep = sleep
	}
}

func NewGateway(completer Completer, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		completer:        completer,
		maxAttempts:      DefaultMaxAttempts,
		rateLimitBackoff: DefaultRateLimitBackoff,
		errorBackoff:     DefaultErrorBackoff,
		sleep:            Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Provider() string {
	return g.completer.Name()
}

func (g *Gateway) AskJSON(ctx context.Context, systemPrompt, userPrompt string) (Object, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		obj, err := g.attempt(ctx, systemPrompt, userPrompt)
		if err == nil {
			return obj, nil
		}
		lastErr = err

		rateLimited := IsRateLimited(err)
		slog.Warn("llm call failed",
			"provider", g.completer.Name(),
			"attempt", attempt,
			"max_attempts", g.maxAttempts,
			"rate_limited", rateLimited,
			"error", err,
		)

		if attempt == g.maxAttempts {
			break
		}

		wait := g.backoff(attempt, rateLimited)
		if err := g.sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("%w: backoff interrupted after attempt %d: %v", ErrExhausted, attempt, err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, g.maxAttempts, lastErr)
}

func (g *Gateway) attempt(ctx context.Context, systemPrompt, userPrompt string) (Object, error) {
	content, err := g.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	return parseObject(content)
}

func (g *Gateway) backoff(attempt int, rateLimited bool) time.Duration {
	if rateLimited {
		return g.rateLimitBackoff * time.Duration(attempt)
	}
	return g.errorBackoff * time.Duration(attempt)
}
