package core

import (
	"strings"
	"testing"
)

func TestNewScreenDimensions(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("got %dx%d, want 10x5", s.Width(), s.Height())
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("fresh screen cell = %q, want space", got)
	}
}

func TestSetGetWithColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '@', ColorBrightRed)

	cell := s.GetCell(1, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightRed {
		t.Errorf("cell = %+v", cell)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(3, 0, 'x')
	s.Set(0, 3, 'x')

	if got := s.Get(5, 5); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds Set leaked into buffer")
	}
}

func TestClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(1, 1, '#', ColorGreen)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v", cell)
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'a')
	s.Set(3, 3, 'b')

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("got %dx%d, want 6x2", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'a' {
		t.Errorf("surviving cell = %q, want 'a'", got)
	}
	if got := s.Get(5, 1); got != ' ' {
		t.Errorf("new cell = %q, want space", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "hi")
	if row := s.Row(0); row != "  hi      " {
		t.Errorf("row = %q", row)
	}

	// Clipped at the right edge.
	s.DrawText(8, 1, "long")
	if row := s.Row(1); row != "        lo" {
		t.Errorf("clipped row = %q", row)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorWhite)
	if row := s.Row(0); row != "    abc    " {
		t.Errorf("row = %q", row)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box render:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawRect(NewRect(1, 1, 3, 1), '#', ColorBlue)
	if row := s.Row(1); row != " ### " {
		t.Errorf("row = %q", row)
	}
	if c := s.GetCell(2, 1).Color; c != ColorBlue {
		t.Errorf("fill color = %v", c)
	}
}

func TestDrawLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(0, 2, 5, '-', ColorDefault)
	s.DrawVLine(2, 0, 5, '|', ColorDefault)

	// The vertical line drawn second owns the crossing cell.
	if row := s.Row(2); row != "--|--" {
		t.Errorf("row = %q", row)
	}
	if got := s.Get(2, 0); got != '|' {
		t.Errorf("vline cell = %q", got)
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(9); got != "    " {
		t.Errorf("Row(9) = %q", got)
	}
}
