package core

import (
	"strings"
	"testing"
)

// rows renders a screen as one string per row for golden comparisons.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	for _, r := range rows(s) {
		if r != "      " {
			t.Errorf("row = %q, want blanks", r)
		}
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clips at edges",
			draw: func(s *Screen) {
				s.DrawText(-2, 0, "abcd")
				s.DrawText(4, 1, "xyz")
			},
			want: []string{"cd    ", "    xy", "      "},
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ab") },
			want: []string{"      ", "  ab  ", "      "},
		},
		{
			name: "rect fill",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 0, 2, 2), '#') },
			want: []string{" ##   ", " ##   ", "      "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: []string{"┌──┐  ", "│  │  ", "└──┘  "},
		},
		{
			name: "out of bounds ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'X')
				s.Set(6, 0, 'X')
				s.Set(0, 3, 'X')
			},
			want: []string{"      ", "      ", "      "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			got := rows(s)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScreenGetAndRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.Set(2, 1, 'Q')
	if s.Get(2, 1) != 'Q' {
		t.Errorf("Get = %q", s.Get(2, 1))
	}
	if s.Get(9, 9) != ' ' {
		t.Error("out of bounds Get should be blank")
	}
	if s.Row(1) != "  Q  " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(-1) != "     " {
		t.Errorf("Row(-1) = %q", s.Row(-1))
	}
}

func TestScreenResizeKeepsCorner(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.Row(0) != "Hel" {
		t.Fatalf("after shrink %dx%d row0=%q", s.Width(), s.Height(), s.Row(0))
	}

	s.Resize(8, 7)
	if s.Row(0) != "Hel     " {
		t.Errorf("after grow row0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Error("cropped rows came back")
	}
}

func TestScreenColorCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(1, 1, '@', ColorBrightRed)

	c := s.GetCell(1, 1)
	if c.Rune != '@' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' in bright red", c)
	}

	s.DrawTextColor(2, 0, "ab", ColorGreen)
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("DrawTextColor should color every rune")
	}

	// Plain Set resets the color.
	s.Set(1, 1, '#')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should store the default color")
	}

	s.Resize(5, 2)
	if s.GetCell(1, 0).Color != ColorDefault || s.GetCell(2, 0).Color != ColorGreen {
		t.Error("Resize should keep colors of preserved cells")
	}

	s.Clear()
	if s.GetCell(2, 0) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset colors")
	}
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds cell should be blank")
	}
}

func TestColorBrightDim(t *testing.T) {
	tests := []struct {
		c, bright, dim Color
	}{
		{ColorRed, ColorBrightRed, ColorRed},
		{ColorWhite, ColorBrightWhite, ColorWhite},
		{ColorBrightCyan, ColorBrightCyan, ColorCyan},
		{ColorOrange, ColorOrange, ColorOrange},
		{ColorDefault, ColorDefault, ColorDefault},
	}
	for _, tt := range tests {
		if got := tt.c.Bright(); got != tt.bright {
			t.Errorf("%d.Bright() = %d, want %d", tt.c, got, tt.bright)
		}
		if got := tt.c.Dim(); got != tt.dim {
			t.Errorf("%d.Dim() = %d, want %d", tt.c, got, tt.dim)
		}
	}
}
