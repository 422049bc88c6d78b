package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/glyphstage/parameter"
)

// ErrInvalidFPS is returned for frame rates outside (0, MaxFPS]
var ErrInvalidFPS = errors.New("invalid fps")

// Clock paces the frame loop at a fixed target rate and measures frame deltas
type Clock struct {
	source   TimeSource
	fps      int
	interval time.Duration
	last     time.Time
	next     time.Time
	delta    time.Duration
	overrun  bool
}

// NewClock creates a clock whose first delta equals one frame interval
func NewClock(fps int, source TimeSource) (*Clock, error) {
	if source == nil {
		source = NewTimeProvider()
	}
	c := &Clock{source: source}
	if err := c.SetFPS(fps); err != nil {
		return nil, err
	}
	c.last = source.Now()
	c.next = c.last.Add(c.interval)
	c.delta = c.interval
	return c, nil
}

// SetFPS changes the target rate; the next deadline is recomputed from the last tick
func (c *Clock) SetFPS(fps int) error {
	if fps <= 0 || fps > parameter.MaxFPS {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, fps)
	}
	c.fps = fps
	c.interval = time.Second / time.Duration(fps)
	if !c.last.IsZero() {
		c.next = c.last.Add(c.interval)
	}
	return nil
}

// FPS returns the target frame rate
func (c *Clock) FPS() int { return c.fps }

// Interval returns the target frame duration
func (c *Clock) Interval() time.Duration { return c.interval }

// Delta returns the measured duration of the previous frame
func (c *Clock) Delta() time.Duration { return c.delta }

// Overrun reports whether the last tick arrived after its deadline
func (c *Clock) Overrun() bool { return c.overrun }

// Tick sleeps until the next frame deadline and records the elapsed time since the previous tick
func (c *Clock) Tick() {
	now := c.source.Now()
	c.overrun = now.After(c.next)
	if now.Before(c.next) {
		c.source.Sleep(c.next.Sub(now))
		now = c.source.Now()
	}
	c.delta = now.Sub(c.last)
	c.last = now

	c.next = c.next.Add(c.interval)
	// Resync after a stall instead of bursting to catch up
	if c.next.Before(now) {
		c.next = now.Add(c.interval)
	}
}
