package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// chatLimiters hands out one token-bucket limiter per session, so a noisy
// client cannot flood a room's chat topic.
type chatLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newChatLimiters(perMinute, burst int) *chatLimiters {
	return &chatLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *chatLimiters) allow(token string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[token]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[token] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func (l *chatLimiters) forget(token string) {
	l.mu.Lock()
	delete(l.limiters, token)
	l.mu.Unlock()
}
