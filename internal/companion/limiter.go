package companion

import "golang.org/x/time/rate"

// CallLimiter caps proactive provider calls globally, so an idle sweep over
// many users cannot flood the generation service in one tick.
type CallLimiter struct {
	lim *rate.Limiter
}

// NewCallLimiter allows roughly perMinute calls per minute with a burst of one.
func NewCallLimiter(perMinute int) *CallLimiter {
	if perMinute <= 0 {
		perMinute = 6
	}
	return &CallLimiter{
		lim: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1),
	}
}

// Allow reports whether one more proactive call may go out now.
func (c *CallLimiter) Allow() bool {
	return c.lim.Allow()
}
