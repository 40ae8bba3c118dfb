package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionFire, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		got, quit := km.MapKey(keyMsg(tt.key))
		if got != tt.want || quit != tt.wantQuit {
			t.Errorf("MapKey(%q) = %s, %v; want %s, %v", tt.key, got, quit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToInputHoldsMovement(t *testing.T) {
	km := NewKeyMapper()
	in := core.NewHeldInput(holdTicks)

	km.MapKeyToInput(keyMsg("left"), in)
	km.MapKeyToInput(keyMsg("p"), in)

	first := in.Frame()
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionPause) {
		t.Fatalf("first frame = %v", first.Actions)
	}
	second := in.Frame()
	if !second.Has(core.ActionLeft) {
		t.Error("movement not held")
	}
	if second.Has(core.ActionPause) {
		t.Error("pause repeated")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"left", MenuActionLeft},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
	}
	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
