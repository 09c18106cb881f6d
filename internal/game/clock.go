package game

import "time"

// SleepClock paces frames with time.Sleep. A late frame is not made up for.
type SleepClock struct {
	last time.Time
}

// NewSleepClock creates a wall-clock pacer.
func NewSleepClock() *SleepClock {
	return &SleepClock{}
}

// Tick blocks until one frame interval has passed since the previous tick.
func (c *SleepClock) Tick(fps int) {
	interval := time.Second / time.Duration(fps)
	if !c.last.IsZero() {
		if wait := time.Until(c.last.Add(interval)); wait > 0 {
			time.Sleep(wait)
		}
	}
	c.last = time.Now()
}

// Sleep blocks for d.
func (c *SleepClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// InstantClock never blocks. Used for headless simulation.
type InstantClock struct{}

// Tick returns immediately.
func (InstantClock) Tick(int) {}

// Sleep returns immediately.
func (InstantClock) Sleep(time.Duration) {}

// FramesIn converts a duration into a whole number of frames at fps,
// rounding up. Frontends that tick on their own use it to hold the
// game-over summary.
func FramesIn(d time.Duration, fps int) int {
	if d <= 0 || fps <= 0 {
		return 0
	}
	return int((d*time.Duration(fps) + time.Second - 1) / time.Second)
}
