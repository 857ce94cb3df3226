package backend

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/bigtext/internal/render/core"
)

func newTestWriter(t *testing.T, w, h int) (*Writer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	wr := NewWriter(&buf, w, h)
	if err := wr.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return wr, &buf
}

func TestWriterPositionsCursor(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	wr.SetCell(2, 1, core.NewCell('#'))
	wr.Show()

	// Cell (x=2, y=1) is row 2, column 3 in 1-based terminal coords.
	if !strings.Contains(buf.String(), "\x1b[2;3H") {
		t.Errorf("output missing cursor move, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "#") {
		t.Error("output missing cell rune")
	}
}

func TestWriterIndexedColorSGR(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	wr.SetCell(0, 0, core.NewStyledCell('@', core.NewStyle(core.ColorBrightGreen)))
	wr.Show()

	if !strings.Contains(buf.String(), "\x1b[38;5;10m") {
		t.Errorf("output missing indexed SGR, got %q", buf.String())
	}
}

func TestWriterTrueColorSGR(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	style := core.NewStyle(core.ColorFromRGB(255, 0, 102))
	wr.SetCell(0, 0, core.NewStyledCell('@', style))
	wr.Show()

	if !strings.Contains(buf.String(), "\x1b[38;2;255;0;102m") {
		t.Errorf("output missing truecolor SGR, got %q", buf.String())
	}
}

func TestWriterResetsAfterShow(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	wr.SetCell(0, 0, core.NewStyledCell('@', core.NewStyle(core.ColorRed)))
	wr.Show()

	if !strings.HasSuffix(buf.String(), "\x1b[0m") {
		t.Errorf("output should end with SGR reset, got %q", buf.String())
	}
}

func TestWriterOnlyEmitsDirtyCells(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	wr.SetCell(4, 0, core.NewCell('#'))
	wr.Show()

	// Untouched cells must not be painted over: exactly one cursor move
	// for the single run.
	if got := strings.Count(buf.String(), "H"); got != 1 {
		t.Errorf("expected 1 cursor move, got %d in %q", got, buf.String())
	}

	// A second Show with nothing staged emits no cell output.
	buf.Reset()
	wr.Show()
	if strings.Contains(buf.String(), "#") {
		t.Errorf("second Show should not repaint, got %q", buf.String())
	}
}

func TestWriterRunGroupsCells(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 3)

	style := core.NewStyle(core.ColorBlue)
	for x := 0; x < 3; x++ {
		wr.SetCell(x, 0, core.NewStyledCell('#', style))
	}
	wr.Show()

	// Three same-style consecutive cells: one move, one SGR change.
	if got := strings.Count(buf.String(), "\x1b[38;5;4m"); got != 1 {
		t.Errorf("expected 1 SGR for the run, got %d in %q", got, buf.String())
	}
	if !strings.Contains(buf.String(), "###") {
		t.Errorf("run should be contiguous, got %q", buf.String())
	}
}

func TestWriterIgnoresOutOfBounds(t *testing.T) {
	wr, buf := newTestWriter(t, 4, 2)

	wr.SetCell(-1, 0, core.NewCell('#'))
	wr.SetCell(0, 5, core.NewCell('#'))
	wr.Show()

	if strings.Contains(buf.String(), "#") {
		t.Errorf("out of bounds cells should be dropped, got %q", buf.String())
	}
}

func TestWriterShutdownRestoresStyle(t *testing.T) {
	wr, buf := newTestWriter(t, 10, 4)

	wr.SetCell(0, 2, core.NewCell('#'))
	wr.Show()
	buf.Reset()
	wr.Shutdown()

	out := buf.String()
	if !strings.Contains(out, "\x1b[0m") {
		t.Errorf("shutdown should reset SGR, got %q", out)
	}
	// Painted through row index 2, so the cursor parks on row 4.
	if !strings.Contains(out, "\x1b[4;1H") {
		t.Errorf("shutdown should park cursor below output, got %q", out)
	}
}
