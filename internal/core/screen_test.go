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

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green '#'", cell)
	}

	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected default space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(0, 0, 'A', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'Z')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize() dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'Z' {
		t.Errorf("Resize() lost content at (2, 2), got %q", got)
	}

	// Shrinking clips
	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'Z' {
		t.Errorf("shrink lost in-bounds content, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(1, 1, "hello")

	row := ""
	for x := 0; x < s.Width(); x++ {
		row += string(s.Get(x, 1))
	}
	if !strings.Contains(row, "hello") {
		t.Errorf("DrawText() row = %q", row)
	}

	// Clipping past the right edge must not panic
	s.DrawText(8, 0, "long text")
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
