package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// idleTTL is how long a client may stay silent before its bucket is dropped.
// A bucket idle that long has refilled anyway, so dropping it loses nothing.
const idleTTL = 10 * time.Minute

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per key inside this process and prunes
// buckets that have been idle for idleTTL.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(requestsPerMinute, burst int) *MemoryLimiter {
	if burst < 1 {
		burst = 1
	}
	return &MemoryLimiter{
		entries: make(map[string]*memoryEntry),
		limit:   rate.Every(time.Minute / time.Duration(max(requestsPerMinute, 1))),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	now := l.now()
	l.sweep(now)

	entry, ok := l.entries[key]
	if !ok {
		entry = &memoryEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1), nil
}

// sweep runs at most once per idleTTL. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleTTL {
		return
	}
	l.lastSweep = now

	for key, entry := range l.entries {
		if now.Sub(entry.lastSeen) >= idleTTL {
			delete(l.entries, key)
		}
	}
}

// Len reports how many client buckets are currently tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
