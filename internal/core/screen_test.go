package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	// Out of bounds is ignored on write, space on read
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green '#'", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 2, '#')
	if got := s.GetCell(2, 2).Color; got != ColorDefault {
		t.Errorf("Set should use default color, got %v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorRed)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), '█', ColorBlue)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != ColorBlue {
				t.Fatalf("cell (%d, %d) = %+v, expected blue block", x, y, cell)
			}
		}
	}
	if s.Get(4, 1) != ' ' {
		t.Error("DrawRect should not write outside its bounds")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(8, 4)
	s.Set(2, 2, 'A')

	s.Resize(12, 6)
	if s.Width() != 12 || s.Height() != 6 {
		t.Errorf("Resize dims = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Resize should preserve content, got %q", got)
	}

	// Shrink clips
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("shrunk screen should read space out of bounds, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() lines = %q", lines)
	}
}
