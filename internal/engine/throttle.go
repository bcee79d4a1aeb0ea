package engine

import (
	"time"

	"golang.org/x/time/rate"
)

// NewThrottle returns a limiter enforcing a fixed delay between events.
// The first event passes immediately. A non-positive delay disables
// throttling entirely.
func NewThrottle(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
