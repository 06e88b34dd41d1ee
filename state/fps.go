package state

import "time"

// FPSCounter counts the ticks seen during the trailing second.
type FPSCounter struct {
	ticks []time.Duration
}

// Tick records now and returns the number of ticks no older than one second.
// Timestamps must be non-decreasing.
func (c *FPSCounter) Tick(now time.Duration) int {
	c.ticks = append(c.ticks, now)

	cutoff := now - time.Second
	stale := 0
	for stale < len(c.ticks) && c.ticks[stale] < cutoff {
		stale++
	}
	if stale > 0 {
		n := copy(c.ticks, c.ticks[stale:])
		c.ticks = c.ticks[:n]
	}
	return len(c.ticks)
}
