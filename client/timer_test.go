package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 300, Remaining(anchor, 300, anchor))
	assert.Equal(t, 299, Remaining(anchor, 300, anchor.Add(1*time.Second)))
	assert.Equal(t, 1, Remaining(anchor, 300, anchor.Add(299*time.Second)))
	assert.Equal(t, 0, Remaining(anchor, 300, anchor.Add(300*time.Second)))
	assert.Equal(t, 0, Remaining(anchor, 300, anchor.Add(2*time.Hour)))

	// Fractional elapsed time rounds up, a display never skips ahead
	assert.Equal(t, 300, Remaining(anchor, 300, anchor.Add(500*time.Millisecond)))
	assert.Equal(t, 299, Remaining(anchor, 300, anchor.Add(1500*time.Millisecond)))
}

func TestRemainingReloadSafe(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Recomputing at any later instant gives the same answer as an
	// uninterrupted tick sequence would
	for elapsed := 0; elapsed <= 310; elapsed += 13 {
		now := anchor.Add(time.Duration(elapsed) * time.Second)
		want := 300 - elapsed
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, Remaining(anchor, 300, now), "elapsed %ds", elapsed)
	}
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "00:00", FormatHMS(0))
	assert.Equal(t, "00:05", FormatHMS(5))
	assert.Equal(t, "40:00", FormatHMS(2400))
	assert.Equal(t, "1:05:09", FormatHMS(3909))
	assert.Equal(t, "00:00", FormatHMS(-7))
}

// fakeClock advances one second per reading, so a countdown walks its
// whole range without waiting on the wall clock.
type fakeClock struct {
	mu    sync.Mutex
	start time.Time
	reads int
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.reads) * time.Second)
	c.reads++
	return t
}

func TestCountdownTicksToZero(t *testing.T) {
	clock := &fakeClock{start: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	ticks := make(chan int, 16)
	done := make(chan struct{})
	c := &Countdown{
		Interval: time.Millisecond,
		Now:      clock.now,
		OnTick:   func(remaining int) { ticks <- remaining },
		OnExpire: func() { close(done) },
	}

	c.Start(clock.start, 5)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never expired")
	}
	assert.False(t, c.Running())

	close(ticks)
	var seen []int
	for remaining := range ticks {
		seen = append(seen, remaining)
	}
	require.NotEmpty(t, seen)
	assert.Equal(t, 5, seen[0], "first tick fires immediately with the full duration")
	assert.Equal(t, 0, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.Equal(t, seen[i-1]-1, seen[i], "remaining decreases strictly once per tick")
	}
}

func TestCountdownExpiredAnchorFiresImmediately(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	expired := false
	c := &Countdown{
		Interval: time.Hour,
		Now:      func() time.Time { return anchor.Add(10 * time.Minute) },
		OnExpire: func() { expired = true },
	}

	c.Start(anchor, 60)
	assert.True(t, expired, "an already-elapsed service expires on the synchronous first tick")
	assert.False(t, c.Running())
}

func TestCountdownStopIdempotent(t *testing.T) {
	anchor := time.Now()
	c := &Countdown{Interval: time.Hour}

	c.Stop()
	assert.False(t, c.Running())

	c.Start(anchor, 600)
	assert.True(t, c.Running())

	c.Stop()
	c.Stop()
	assert.False(t, c.Running())
}

func TestCountdownStartReplacesPrevious(t *testing.T) {
	anchor := time.Now()

	var mu sync.Mutex
	var last int
	c := &Countdown{
		Interval: time.Hour,
		OnTick: func(remaining int) {
			mu.Lock()
			last = remaining
			mu.Unlock()
		},
	}

	c.Start(anchor, 600)
	c.Start(anchor, 1200)

	assert.True(t, c.Running())
	mu.Lock()
	assert.Equal(t, 1200, last, "only the newest timer drives the display")
	mu.Unlock()

	c.Stop()
}
