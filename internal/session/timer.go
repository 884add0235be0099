// ABOUTME: Workout timer: resume, pause, elapsed, and a periodic watch loop.
// ABOUTME: Elapsed time is paused seconds plus time since the last resume.
package session

import (
	"context"
	"time"
)

// DefaultWatchInterval is how often Watch recomputes elapsed time.
const DefaultWatchInterval = 100 * time.Millisecond

// Resume starts or resumes the timer.
func (c *Controller) Resume(now time.Time) error {
	if _, err := c.Current(); err != nil {
		return err
	}
	if c.state.Active {
		return nil
	}
	c.state.Active = true
	c.state.StartedAt = &now
	return c.save()
}

// Pause stops the timer, folding the running time into the paused total.
func (c *Controller) Pause(now time.Time) error {
	if _, err := c.Current(); err != nil {
		return err
	}
	if !c.state.Active {
		return nil
	}
	c.state.PausedSeconds = c.state.Elapsed(now)
	c.state.Active = false
	c.state.StartedAt = nil
	return c.save()
}

// Elapsed returns whole seconds on the timer at now.
func (c *Controller) Elapsed(now time.Time) int {
	return c.state.Elapsed(now)
}

// Running reports whether the timer is running.
func (c *Controller) Running() bool {
	return c.state.Active
}

// Watch calls fn with the elapsed seconds every interval until ctx is done.
// fn is called once immediately.
func (c *Controller) Watch(ctx context.Context, interval time.Duration, fn func(elapsed int)) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	fn(c.Elapsed(time.Now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			fn(c.Elapsed(now))
		}
	}
}
