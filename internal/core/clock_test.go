package core

import "testing"

func TestStepClock(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		ticks    int
		want     int64
	}{
		{"60 fps", 60, 60, 960},
		{"50 fps", 50, 10, 200},
		{"zero falls back to 60", 0, 3, 48},
		{"very fast rate clamps step", 5000, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewStepClock(tt.tickRate)
			if c.Now() != 0 {
				t.Fatalf("new clock should start at 0, got %d", c.Now())
			}
			for i := 0; i < tt.ticks; i++ {
				c.Advance()
			}
			if got := c.Now(); got != tt.want {
				t.Errorf("after %d ticks Now() = %d, want %d", tt.ticks, got, tt.want)
			}
		})
	}
}

func TestStepClockMillis(t *testing.T) {
	c := NewStepClockMillis(25)
	c.Advance()
	c.Advance()
	if c.Now() != 50 {
		t.Errorf("Now() = %d, want 50", c.Now())
	}
	if NewStepClockMillis(0).Step() != 1 {
		t.Error("non-positive step should clamp to 1")
	}
}

func TestMonotonicClockNeverGoesBack(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Now()
	c.Advance()
	b := c.Now()
	if b < a || a < 0 {
		t.Errorf("monotonic clock went backwards: %d then %d", a, b)
	}
}
