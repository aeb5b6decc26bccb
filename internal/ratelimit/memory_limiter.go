package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the single-instance fallback used when no Redis address
// is configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{requests: make(map[string][]time.Time)}
}

func (m *MemoryLimiter) Check(_ context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	recent := m.requests[key][:0]
	for _, at := range m.requests[key] {
		if at.After(windowStart) {
			recent = append(recent, at)
		}
	}

	allowed := len(recent) < limit
	if allowed {
		recent = append(recent, now)
	}
	m.requests[key] = recent

	remaining := limit - len(recent)
	if remaining < 0 {
		remaining = 0
	}
	result := &Result{Allowed: allowed, Remaining: remaining, ResetAt: now.Add(window)}
	if !allowed {
		return result, ErrLimitExceeded
	}
	return result, nil
}
