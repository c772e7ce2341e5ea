package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	// Out of bounds reads return space
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, want space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10,0) = %q, want space", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, -1, 'Y')
	s.Set(100, 100, 'Y')
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetCell(2, 1, 'A', ColorGreen)
	cell := s.GetCell(2, 1)
	if cell.Rune != 'A' || cell.Color != ColorGreen {
		t.Errorf("GetCell(2,1) = %+v, want {A, green}", cell)
	}

	if cell := s.GetCell(-1, 0); cell.Color != ColorDefault {
		t.Errorf("out-of-bounds cell color = %v, want default", cell.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(1, 1, 'Z', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v, want blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'Q')

	s.Resize(20, 20)
	if got := s.Get(2, 3); got != 'Q' {
		t.Errorf("after grow, Get(2,3) = %q, want 'Q'", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 3); got != ' ' {
		t.Errorf("after shrink, out-of-bounds Get = %q, want space", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(1, 1, "hello")

	if row := s.Row(1); !strings.Contains(row, "hello") {
		t.Errorf("row 1 = %q, want to contain 'hello'", row)
	}

	// Clipped text does not panic
	s.DrawText(8, 1, "world")
	if got := s.Get(9, 1); got != 'o' {
		t.Errorf("clipped char = %q, want 'o'", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(0, "abc")
	if got := s.Get(4, 0); got != 'a' {
		t.Errorf("centered start = %q, want 'a'", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3)
	if !r.Contains(2, 2) || !r.Contains(5, 4) {
		t.Error("Rect should contain its corners (inclusive top-left, exclusive bottom-right)")
	}
	if r.Contains(6, 2) || r.Contains(2, 5) {
		t.Error("Rect should not contain points past its edges")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp in range should be identity")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp below min should return min")
	}
	if Clamp(42, 0, 10) != 10 {
		t.Error("Clamp above max should return max")
	}
}
