package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrRateLimited marks a failure the provider reported as rate limiting.
var ErrRateLimited = errors.New("llm rate limited")

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// IsRateLimited reports whether err came from the provider refusing the call
// for rate limiting. Decode failures never count, even when the model's text
// happens to mention a rate limit.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	if errors.Is(err, ErrMalformedResponse) {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "rate limit")
}
