package core

// HeldInput turns discrete key presses into held actions.
// Terminals report presses and auto-repeats but never releases, so a press
// keeps its action held for a number of ticks and every repeat refreshes it.
type HeldInput struct {
	hold  int
	left  map[Action]int
	once  map[Action]bool
	frame InputFrame
}

// NewHeldInput returns a tracker holding each press for hold ticks.
func NewHeldInput(hold int) *HeldInput {
	if hold < 1 {
		hold = 1
	}
	return &HeldInput{
		hold:  hold,
		left:  make(map[Action]int),
		once:  make(map[Action]bool),
		frame: NewInputFrame(),
	}
}

// Press holds a movement or fire action.
func (h *HeldInput) Press(a Action) {
	h.left[a] = h.hold
}

// Trigger reports an action for exactly one frame (pause, confirm...).
func (h *HeldInput) Trigger(a Action) {
	h.once[a] = true
}

// Release drops an action immediately.
func (h *HeldInput) Release(a Action) {
	delete(h.left, a)
}

// Frame returns this tick's input and ages every hold by one tick.
// The returned frame is reused by the next call.
func (h *HeldInput) Frame() InputFrame {
	h.frame.Clear()
	for a, n := range h.left {
		h.frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	for a := range h.once {
		h.frame.Set(a)
		delete(h.once, a)
	}
	return h.frame
}

// Reset drops every held action.
func (h *HeldInput) Reset() {
	clear(h.left)
	clear(h.once)
}
