package ratelimit

import (
	"sync"
	"time"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

const (
	DefaultLimit  = 100
	DefaultWindow = time.Minute
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a process-local fixed-window counter per identity. A rejected
// request still consumes budget; this bounds retry storms because hammering
// the endpoint never shortens the wait for a fresh window.
type Limiter struct {
	mu        sync.Mutex
	windows   map[types.Identity]*window
	limit     int
	window    time.Duration
	now       func() time.Time
	nextSweep time.Time
}

type Option func(*Limiter)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(x *Limiter) {
		x.now = now
	}
}

func New(limit int, windowLen time.Duration, options ...Option) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if windowLen <= 0 {
		windowLen = DefaultWindow
	}

	x := &Limiter{
		windows: make(map[types.Identity]*window),
		limit:   limit,
		window:  windowLen,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(x)
	}
	x.nextSweep = x.now().Add(x.window)

	return x
}

// Check admits or rejects one unit of work for the identity. The decision is
// synchronous and O(1); expired windows of other identities are swept
// opportunistically at most once per window length.
func (x *Limiter) Check(identity types.Identity) Decision {
	now := x.now()

	x.mu.Lock()
	defer x.mu.Unlock()

	if !now.Before(x.nextSweep) {
		x.sweep(now)
		x.nextSweep = now.Add(x.window)
	}

	w, ok := x.windows[identity]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(x.window)}
		x.windows[identity] = w
	}

	w.count++
	remaining := x.limit - w.count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   w.count <= x.limit,
		Limit:     x.limit,
		Remaining: remaining,
		ResetAt:   w.resetAt,
	}
}

// Sweep removes all expired windows. Safe to call concurrently with Check.
func (x *Limiter) Sweep() {
	now := x.now()
	x.mu.Lock()
	defer x.mu.Unlock()
	x.sweep(now)
}

func (x *Limiter) sweep(now time.Time) {
	for id, w := range x.windows {
		if !now.Before(w.resetAt) {
			delete(x.windows, id)
		}
	}
}
