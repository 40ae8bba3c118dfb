package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

func TestPainterKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	// A renderer on a non-terminal writer emits no escape codes.
	out := NewPainter(lipgloss.NewRenderer(io.Discard)).Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "xyz   " {
		t.Errorf("row 1 = %q", lines[1])
	}
}
