package ratelimiter

import (
	"sync"
	"time"
)

// FixedWindowLimiter counts requests per key in windows that start at the
// key's first request. Allow reports the time left in the window when the
// key is over the limit.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
}

type window struct {
	start time.Time
	count int
}

func NewFixedWindowLimiter(limit int, period time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

func (l *FixedWindowLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.clients[key]
	if !ok || now.Sub(w.start) >= l.period {
		l.evict(now)
		l.clients[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.period).Sub(now)
	}

	w.count++
	return true, 0
}

// evict drops expired windows so one-off clients do not accumulate.
func (l *FixedWindowLimiter) evict(now time.Time) {
	for key, w := range l.clients {
		if now.Sub(w.start) >= l.period {
			delete(l.clients, key)
		}
	}
}
