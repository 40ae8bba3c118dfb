package core

import "time"

// Clock reports elapsed simulation time in milliseconds.
// Games read it once per tick and compare timestamps against it.
type Clock interface {
	// Now returns milliseconds since the clock started.
	Now() int64
	// Advance is called once per simulation tick.
	Advance()
}

// StepClock advances a fixed amount on every tick, so a run with the
// same seed and inputs always sees the same timestamps.
type StepClock struct {
	now  int64
	step int64
}

// NewStepClock returns a clock advancing 1000/tickRate ms per tick.
// A tickRate <= 0 falls back to 60.
func NewStepClock(tickRate int) *StepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	step := int64(time.Second/time.Millisecond) / int64(tickRate)
	if step < 1 {
		step = 1
	}
	return &StepClock{step: step}
}

// NewStepClockMillis returns a clock advancing step ms per tick.
func NewStepClockMillis(step int64) *StepClock {
	if step < 1 {
		step = 1
	}
	return &StepClock{step: step}
}

// Now returns the current simulation time.
func (c *StepClock) Now() int64 { return c.now }

// Advance moves the clock forward by one step.
func (c *StepClock) Advance() { c.now += c.step }

// Step returns the per-tick increment.
func (c *StepClock) Step() int64 { return c.step }

// MonotonicClock follows wall time. Advance is a no-op.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock anchored at the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns milliseconds elapsed since the clock was created.
func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// Advance does nothing; wall time moves on its own.
func (c *MonotonicClock) Advance() {}
