package clock

import (
	"context"
	"time"
)

// Clock measures the time between frames in milliseconds.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithSource uses now in place of the wall clock.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Delta returns the milliseconds elapsed since the previous call. The first call
// returns 0, and a clock that goes backwards reports 0 rather than a negative step.
func (c *Clock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

// Run calls fn once per tick at rate frames per second until ctx is done.
func (c *Clock) Run(ctx context.Context, rate int, fn func(delta float64)) error {
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	fn(c.Delta())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(c.Delta())
		}
	}
}
