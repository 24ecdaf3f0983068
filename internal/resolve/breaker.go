// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "time"

// Breaker trips a lookup source after repeated failures and keeps it open
// for a cooldown period so a struggling API is not hammered mid-run. The
// resolver drives lookups sequentially, so no locking is needed.
type Breaker struct {
	threshold int
	cooldown  time.Duration

	failures  int
	openUntil time.Time

	now func() time.Time
}

// NewBreaker returns a breaker that opens after threshold consecutive
// failures and stays open for cooldown. A threshold of zero or less
// disables tripping entirely.
func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Allow reports whether the guarded source may be called. An open breaker
// closes again once the cooldown has elapsed.
func (b *Breaker) Allow() bool {
	if b.openUntil.IsZero() {
		return true
	}
	if b.now().Before(b.openUntil) {
		return false
	}
	// Cooldown elapsed: close and start counting fresh.
	b.openUntil = time.Time{}
	b.failures = 0
	return true
}

// Failure records a failed call. Reaching the threshold opens the breaker.
func (b *Breaker) Failure() {
	if b.threshold <= 0 {
		return
	}
	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = b.now().Add(b.cooldown)
	}
}

// Success resets the consecutive failure count.
func (b *Breaker) Success() {
	b.failures = 0
}
