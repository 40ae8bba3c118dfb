package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// TickCounter accumulates elapsed time from a source clock and can be paused.
// While paused nothing accumulates; resuming resets the origin so the paused
// span never counts.
type TickCounter struct {
	src    core.Clock
	last   int64
	now    int64
	paused bool
}

// NewTickCounter starts a counter at zero.
func NewTickCounter(src core.Clock) *TickCounter {
	return &TickCounter{src: src, last: src.Now()}
}

// Sample folds the source's progress into the counter and returns the new time.
// Called once per tick so every timer in a tick sees the same timestamp.
func (t *TickCounter) Sample() int64 {
	if t.paused {
		return t.now
	}
	cur := t.src.Now()
	t.now += cur - t.last
	t.last = cur
	return t.now
}

// Now returns the last sampled time.
func (t *TickCounter) Now() int64 {
	return t.now
}

// Pause freezes the counter.
func (t *TickCounter) Pause() {
	t.paused = true
}

// Resume unfreezes the counter from the source's current time.
func (t *TickCounter) Resume() {
	t.paused = false
	t.last = t.src.Now()
}

// Skip drops the source's progress since the last sample.
func (t *TickCounter) Skip() {
	t.last = t.src.Now()
}

// Paused reports whether the counter is frozen.
func (t *TickCounter) Paused() bool {
	return t.paused
}

// Reset restarts the counter at zero.
func (t *TickCounter) Reset() {
	t.now = 0
	t.last = t.src.Now()
}
