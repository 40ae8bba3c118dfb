package millipede

import (
	"testing"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

func TestTickCounterPause(t *testing.T) {
	src := core.NewStepClockMillis(16)
	c := NewTickCounter(src)

	src.Advance()
	src.Advance()
	if got := c.Sample(); got != 32 {
		t.Fatalf("now = %d, want 32", got)
	}

	c.Pause()
	for range 10 {
		src.Advance()
		c.Sample()
	}
	if got := c.Now(); got != 32 {
		t.Errorf("paused counter moved to %d", got)
	}

	c.Resume()
	src.Advance()
	if got := c.Sample(); got != 48 {
		t.Errorf("after resume = %d, want 48", got)
	}

	c.Reset()
	if c.Now() != 0 {
		t.Errorf("reset = %d, want 0", c.Now())
	}
	src.Advance()
	if got := c.Sample(); got != 16 {
		t.Errorf("after reset = %d, want 16", got)
	}
}

func TestTickCounterSkip(t *testing.T) {
	src := core.NewStepClockMillis(10)
	c := NewTickCounter(src)

	src.Advance()
	c.Sample()
	for range 5 {
		src.Advance()
	}
	c.Skip()
	src.Advance()
	if got := c.Sample(); got != 20 {
		t.Errorf("now = %d, want 20 with the skipped span dropped", got)
	}
}
