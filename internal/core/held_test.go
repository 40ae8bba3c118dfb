package core

import "testing"

func TestHeldInputDecays(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(ActionLeft)

	for i := range 3 {
		if !h.Frame().Has(ActionLeft) {
			t.Fatalf("tick %d: left not held", i)
		}
	}
	if h.Frame().Has(ActionLeft) {
		t.Error("left still held after decay")
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(ActionFire)
	h.Frame()
	h.Press(ActionFire)
	h.Frame()
	if !h.Frame().Has(ActionFire) {
		t.Error("repeat did not refresh the hold")
	}
}

func TestHeldInputTriggerIsOneShot(t *testing.T) {
	h := NewHeldInput(5)
	h.Trigger(ActionPause)
	if !h.Frame().Has(ActionPause) {
		t.Fatal("trigger not reported")
	}
	if h.Frame().Has(ActionPause) {
		t.Error("trigger reported twice")
	}
}

func TestHeldInputReleaseAndReset(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(ActionLeft)
	h.Press(ActionRight)
	h.Release(ActionLeft)
	f := h.Frame()
	if f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Errorf("frame = %v", f.Actions)
	}
	h.Reset()
	if len(h.Frame().Actions) != 0 {
		t.Error("reset left actions held")
	}
}
