// Package ratelimit throttles contact form submissions. Each client IP gets
// a fixed window keyed "contact:<ip>"; the window end is reported back so
// handlers can set Retry-After. The memory limiter serves a single
// instance, the Redis limiter is shared by all of them.
package ratelimit

import (
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

// Limiter decides whether another event for key fits in the current window.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) Decision
	Close()
}

// Decision is the result of one Allow call.
type Decision struct {
	Allowed   bool
	Count     int
	WindowEnd time.Time
}

type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]windowState
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

type windowState struct {
	count     int
	windowEnd time.Time
}

// NewMemory returns an in-process limiter that sweeps expired windows in
// the background until Close is called.
func NewMemory() Limiter {
	rl := newMemory(time.Now)
	go rl.sweepLoop()
	return rl
}

func newMemory(now func() time.Time) *memoryLimiter {
	return &memoryLimiter{
		entries: make(map[string]windowState),
		now:     now,
		stopCh:  make(chan struct{}),
	}
}

func (rl *memoryLimiter) Allow(key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, ok := rl.entries[key]
	if !ok || now.After(state.windowEnd) {
		state = windowState{count: 1, windowEnd: now.Add(window)}
		rl.entries[key] = state
		return Decision{Allowed: true, Count: state.count, WindowEnd: state.windowEnd}
	}
	if state.count >= limit {
		return Decision{Allowed: false, Count: state.count, WindowEnd: state.windowEnd}
	}
	state.count++
	rl.entries[key] = state
	return Decision{Allowed: true, Count: state.count, WindowEnd: state.windowEnd}
}

func (rl *memoryLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(rl.now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *memoryLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, state := range rl.entries {
		if now.After(state.windowEnd) {
			delete(rl.entries, key)
		}
	}
}

func (rl *memoryLimiter) Close() {
	rl.once.Do(func() { close(rl.stopCh) })
}
