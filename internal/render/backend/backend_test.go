package backend

import (
	"testing"

	"github.com/dshills/bigtext/internal/render/core"
)

func newTestNull(t *testing.T, w, h int) *Null {
	t.Helper()
	b := NewNull(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return b
}

func TestNullSetGetCell(t *testing.T) {
	b := newTestNull(t, 20, 10)

	cell := core.NewStyledCell('#', core.NewStyle(core.ColorBrightGreen))
	b.SetCell(4, 2, cell)

	if got := b.GetCell(4, 2); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds writes are ignored, reads return empty.
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if !b.GetCell(-1, 0).Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullFill(t *testing.T) {
	b := newTestNull(t, 20, 10)

	cell := core.NewCell('x')
	b.Fill(core.RectFromSize(1, 2, 3, 4), cell)

	if !b.GetCell(2, 1).Equals(cell) {
		t.Error("cell inside rect should be filled")
	}
	if b.GetCell(0, 0).Equals(cell) {
		t.Error("cell outside rect should not be filled")
	}
}

func TestNullClear(t *testing.T) {
	b := newTestNull(t, 20, 10)

	b.SetCell(3, 3, core.NewCell('X'))
	b.Clear()

	if !b.GetCell(3, 3).Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullCursor(t *testing.T) {
	b := newTestNull(t, 20, 10)

	b.ShowCursor(5, 6)
	x, y, visible := b.CursorPosition()
	if x != 5 || y != 6 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (5, 6, true)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullEvents(t *testing.T) {
	b := newTestNull(t, 20, 10)

	b.PostEvent(Event{Type: EventKey, Rune: 'q'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'q' {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestNullRow(t *testing.T) {
	b := newTestNull(t, 5, 2)

	b.SetCell(1, 0, core.NewCell('A'))
	b.SetCell(2, 0, core.NewCell('B'))

	if got := b.Row(0); got != " AB  " {
		t.Errorf("Row(0) = %q, want %q", got, " AB  ")
	}
	if got := b.Row(5); got != "" {
		t.Errorf("out of range row should be empty, got %q", got)
	}
}
