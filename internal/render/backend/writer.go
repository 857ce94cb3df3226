package backend

import (
	"fmt"
	"io"

	"github.com/dshills/bigtext/internal/render/core"
)

// Writer implements Backend by emitting ANSI escape sequences to an
// io.Writer. Unlike Terminal it paints onto the normal screen buffer,
// so output stays visible after the program exits. Cells are staged in
// memory and flushed by Show; only cells that were explicitly set are
// written, so surrounding screen content is left alone.
type Writer struct {
	out           io.Writer
	width, height int
	cells         [][]core.Cell
	dirty         [][]bool
	maxRow        int // rows 0..maxRow-1 have ever been painted
}

// NewWriter creates a writer backend with the given surface size.
func NewWriter(out io.Writer, width, height int) *Writer {
	return &Writer{out: out, width: width, height: height}
}

func (w *Writer) Init() error {
	w.cells = make([][]core.Cell, w.height)
	w.dirty = make([][]bool, w.height)
	for y := range w.cells {
		w.cells[y] = make([]core.Cell, w.width)
		w.dirty[y] = make([]bool, w.width)
	}
	return nil
}

// Shutdown resets the SGR state and moves the cursor below the painted
// region so the shell prompt lands on a clean line.
func (w *Writer) Shutdown() {
	fmt.Fprintf(w.out, "\x1b[0m\x1b[%d;1H", w.maxRow+1)
}

func (w *Writer) Size() (int, int) {
	return w.width, w.height
}

func (w *Writer) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < w.width && y >= 0 && y < w.height {
		w.cells[y][x] = cell
		w.dirty[y][x] = true
		if y+1 > w.maxRow {
			w.maxRow = y + 1
		}
	}
}

func (w *Writer) Fill(rect core.Rect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < w.height; y++ {
		for x := rect.Left; x < rect.Right && x < w.width; x++ {
			if x >= 0 && y >= 0 {
				w.cells[y][x] = cell
				w.dirty[y][x] = true
				if y+1 > w.maxRow {
					w.maxRow = y + 1
				}
			}
		}
	}
}

func (w *Writer) Clear() {
	fmt.Fprint(w.out, "\x1b[2J")
	for y := range w.cells {
		for x := range w.cells[y] {
			w.cells[y][x] = core.EmptyCell()
			w.dirty[y][x] = false
		}
	}
}

// Show flushes staged cells. Each row is emitted as runs of
// consecutive dirty cells: one cursor move per run, one SGR change per
// style change, trailing reset.
func (w *Writer) Show() {
	for y := 0; y < w.height; y++ {
		x := 0
		for x < w.width {
			if !w.dirty[y][x] {
				x++
				continue
			}
			// Start of a run.
			fmt.Fprintf(w.out, "\x1b[%d;%dH", y+1, x+1)
			var cur core.Style
			styled := false
			for x < w.width && w.dirty[y][x] {
				cell := w.cells[y][x]
				if !styled || !cell.Style.Equals(cur) {
					w.writeSGR(cell.Style)
					cur = cell.Style
					styled = true
				}
				fmt.Fprintf(w.out, "%c", cell.Rune)
				w.dirty[y][x] = false
				x++
			}
		}
	}
	fmt.Fprint(w.out, "\x1b[0m")
}

// ShowCursor moves the terminal cursor and makes it visible.
func (w *Writer) ShowCursor(x, y int) {
	fmt.Fprintf(w.out, "\x1b[%d;%dH\x1b[?25h", y+1, x+1)
}

func (w *Writer) HideCursor() {
	fmt.Fprint(w.out, "\x1b[?25l")
}

// PollEvent always reports no event; the writer backend has no input
// side.
func (w *Writer) PollEvent() Event {
	return Event{Type: EventNone}
}

// writeSGR emits the SGR sequence for a style, starting from a reset
// state.
func (w *Writer) writeSGR(s core.Style) {
	fmt.Fprint(w.out, "\x1b[0m")
	if !s.Foreground.IsDefault() {
		w.writeColorSGR(s.Foreground, 38)
	}
	if !s.Background.IsDefault() {
		w.writeColorSGR(s.Background, 48)
	}
	if s.Attributes.Has(core.AttrBold) {
		fmt.Fprint(w.out, "\x1b[1m")
	}
	if s.Attributes.Has(core.AttrDim) {
		fmt.Fprint(w.out, "\x1b[2m")
	}
	if s.Attributes.Has(core.AttrUnderline) {
		fmt.Fprint(w.out, "\x1b[4m")
	}
	if s.Attributes.Has(core.AttrReverse) {
		fmt.Fprint(w.out, "\x1b[7m")
	}
}

// writeColorSGR emits one color as either an indexed (256-color) or
// truecolor SGR parameter. base is 38 for foreground, 48 for
// background.
func (w *Writer) writeColorSGR(c core.Color, base int) {
	if c.Indexed {
		fmt.Fprintf(w.out, "\x1b[%d;5;%dm", base, c.R)
		return
	}
	fmt.Fprintf(w.out, "\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
}
