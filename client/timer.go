package client

import (
	"fmt"
	"sync"
	"time"
)

// Remaining derives seconds left from the absolute anchor instead of a
// decrementing counter, so recomputing after a reload or tab switch gives
// the same answer as an uninterrupted tick sequence would.
func Remaining(anchor time.Time, totalSeconds int, now time.Time) int {
	deadline := anchor.Add(time.Duration(totalSeconds) * time.Second)
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	seconds := int(left / time.Second)
	if left%time.Second != 0 {
		seconds++
	}
	return seconds
}

// FormatHMS renders remaining seconds as MM:SS, or H:MM:SS past an hour.
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Countdown ticks once per interval for a single in-progress service.
// Start replaces any running timer, so a view never has two timers
// racing to update the same display.
type Countdown struct {
	// OnTick receives the remaining seconds, including an immediate
	// tick at Start so the display never shows a stale value.
	OnTick func(remaining int)
	// OnExpire fires once when remaining reaches zero.
	OnExpire func()

	// Interval and Now are overridable for tests; zero values mean
	// one-second ticks on the wall clock.
	Interval time.Duration
	Now      func() time.Time

	mu   sync.Mutex
	stop chan struct{}
}

func (c *Countdown) interval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	return time.Second
}

func (c *Countdown) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Countdown) Start(anchor time.Time, totalSeconds int) {
	c.Stop()

	c.mu.Lock()
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	if c.tick(anchor, totalSeconds, stop) {
		return
	}

	go func() {
		ticker := time.NewTicker(c.interval())
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if c.tick(anchor, totalSeconds, stop) {
					return
				}
			}
		}
	}()
}

// tick reports true when the countdown reached zero and stopped itself.
func (c *Countdown) tick(anchor time.Time, totalSeconds int, stop chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
	}

	remaining := Remaining(anchor, totalSeconds, c.now())
	if c.OnTick != nil {
		c.OnTick(remaining)
	}
	if remaining > 0 {
		return false
	}

	c.mu.Lock()
	if c.stop == stop {
		close(stop)
		c.stop = nil
	}
	c.mu.Unlock()

	if c.OnExpire != nil {
		c.OnExpire()
	}
	return true
}

// Stop is idempotent; stopping an idle countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}
