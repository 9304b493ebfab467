package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(3, 2).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2).Color = %v, expected ColorRed", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must be silently ignored
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, -1, 'C')
	s.Set(0, 5, 'D')

	// Out-of-bounds reads return a blank cell
	if cell := s.GetCell(-1, -1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", cell)
	}

	// Screen should be untouched
	for y := 0; y < 5; y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 10) {
			t.Errorf("row %d modified by out-of-bounds writes: %q", y, row)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorGreen)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected blank default", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'K')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 2).Rune; got != 'K' {
		t.Errorf("content not preserved after grow: got %q", got)
	}

	s.Resize(3, 2)
	if got := s.GetCell(2, 2).Rune; got != ' ' {
		t.Errorf("shrunk screen should drop clipped content, got %q", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", row, "  hello   ")
	}

	// Clipped text must not panic
	s.DrawText(8, 0, "long")
	if row := s.Row(0); row != "        lo" {
		t.Errorf("Row(0) = %q, expected %q", row, "        lo")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if row := s.Row(0); row != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", row, "    abc    ")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("green")
	if err != nil {
		t.Fatalf("ParseColor(green) error: %v", err)
	}
	if c != ColorGreen {
		t.Errorf("ParseColor(green) = %v, expected ColorGreen", c)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown color names")
	}
}
