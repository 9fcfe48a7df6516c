package clock

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces the game loop at a fixed number of ticks per second.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter returns a clock that lets through at most fps ticks per second.
// A non-positive fps disables pacing.
func NewLimiter(fps int) *Limiter {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Every(time.Second / time.Duration(fps))
	}
	return &Limiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next tick is due or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
