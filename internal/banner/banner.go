// Package banner composes and paints pseudographic block-letter text.
// Each input character is blown up to a square bitmap glyph and drawn
// as colored fill characters on a display backend.
package banner

import (
	"fmt"

	"github.com/dshills/bigtext/internal/font"
	"github.com/dshills/bigtext/internal/render/backend"
	"github.com/dshills/bigtext/internal/render/core"
)

// Source loads a glyph table for a size. Injected so renders can come
// from the embedded fonts, a font directory, or a test fixture.
type Source func(font.Size) (*font.Table, error)

// Text renders a line of validated text as large block letters. The
// zero value is ready to use and matches the classic console look:
// '#' on spaces, small font, bright white, built-in fonts.
type Text struct {
	text     string
	textChar rune
	backChar rune
	size     font.Size
	color    core.Color
	gradient core.Color
	hasGrad  bool
	source   Source
}

// New creates a renderer with default settings and the built-in fonts.
func New() *Text {
	return &Text{}
}

// Unset fields fall back to the classic defaults, so the zero value
// renders without any setup.

func (t *Text) fontSize() font.Size {
	if t.size.Valid() {
		return t.size
	}
	return font.Small
}

func (t *Text) fillChar() rune {
	if t.textChar != 0 {
		return t.textChar
	}
	return '#'
}

func (t *Text) fillBack() rune {
	if t.backChar != 0 {
		return t.backChar
	}
	return ' '
}

func (t *Text) fillColor() core.Color {
	if t.color != (core.Color{}) {
		return t.color
	}
	return core.ColorBrightWhite
}

func (t *Text) tableSource() Source {
	if t.source != nil {
		return t.source
	}
	return font.Load
}

// SetText validates and commits new text. If any character is not in
// the supported alphabet the call fails with an UnsupportedCharError
// naming the first offender and the prior text is kept.
func (t *Text) SetText(text string) error {
	for _, r := range text {
		if !font.Supported(r) {
			return &UnsupportedCharError{Char: r}
		}
	}
	t.text = text
	return nil
}

// Text returns the current text.
func (t *Text) Text() string {
	return t.text
}

// SetTextChar sets the character used for foreground glyph cells.
func (t *Text) SetTextChar(c rune) {
	t.textChar = c
}

// SetBackgroundChar sets the character used for background cells and
// the separator column between glyphs.
func (t *Text) SetBackgroundChar(c rune) {
	t.backChar = c
}

// SetFontSize selects the glyph size for subsequent renders.
func (t *Text) SetFontSize(size font.Size) error {
	if !size.Valid() {
		return fmt.Errorf("unsupported font size %d", int(size))
	}
	t.size = size
	return nil
}

// SetColor sets the foreground color for the whole block.
func (t *Text) SetColor(c core.Color) {
	t.color = c
}

// SetGradient enables a horizontal fade from the foreground color to c
// across the painted block.
func (t *Text) SetGradient(c core.Color) {
	t.gradient = c
	t.hasGrad = true
}

// ClearGradient returns to single-color painting.
func (t *Text) ClearGradient() {
	t.hasGrad = false
}

// SetSource sets the glyph table source.
func (t *Text) SetSource(s Source) {
	t.source = s
}

// String returns a diagnostic description of the renderer state.
func (t *Text) String() string {
	return fmt.Sprintf("(text: %q, textChar: %q, backgroundChar: %q, fontSize: %d, color: %s)",
		t.text, t.fillChar(), t.fillBack(), int(t.fontSize()), t.fillColor())
}

// Buffer is a composed block of fill characters: Rows() rows of
// Cols() columns, row-major. It holds no styling; color is applied at
// paint time.
type Buffer struct {
	rows, cols int
	cells      []rune
}

// Rows returns the number of buffer rows (the font size).
func (b *Buffer) Rows() int {
	return b.rows
}

// Cols returns the number of buffer columns (len(text) × font size).
func (b *Buffer) Cols() int {
	return b.cols
}

// At returns the fill character at (row, col).
func (b *Buffer) At(row, col int) rune {
	return b.cells[row*b.cols+col]
}

// Row returns one buffer row as a string.
func (b *Buffer) Row(row int) string {
	return string(b.cells[row*b.cols : (row+1)*b.cols])
}

// Compose loads the glyph table for the current size and stitches the
// text's glyphs into a fresh buffer. No separator columns are inserted
// here; the separator is a paint-time concern.
func (t *Text) Compose() (*Buffer, error) {
	table, err := t.tableSource()(t.fontSize())
	if err != nil {
		return nil, err
	}
	return t.compose(table), nil
}

func (t *Text) compose(table *font.Table) *Buffer {
	n := int(t.fontSize())
	textChar, backChar := t.fillChar(), t.fillBack()
	buf := &Buffer{
		rows:  n,
		cols:  len(t.text) * n,
		cells: make([]rune, n*len(t.text)*n),
	}

	for i, r := range t.text {
		glyph, _ := table.Glyph(r) // text is pre-validated by SetText
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				c := backChar
				if glyph.On(row, col) {
					c = textChar
				}
				buf.cells[row*buf.cols+i*n+col] = c
			}
		}
	}

	return buf
}

// Paint composes the text and draws it on the backend starting at
// (line, column). A single background-fill separator cell follows each
// glyph block. The whole block uses the configured color (or gradient)
// and the backend is left in its default style.
func (t *Text) Paint(b backend.Backend, line, column int) error {
	buf, err := t.Compose()
	if err != nil {
		return err
	}

	n := int(t.fontSize())
	backChar := t.fillBack()
	outWidth := buf.Cols() + len(t.text) // separator after every glyph
	for row := 0; row < buf.Rows(); row++ {
		out := 0
		for col := 0; col < buf.Cols(); col++ {
			style := core.NewStyle(t.colorAt(out, outWidth))
			b.SetCell(column+out, line+row, core.NewStyledCell(buf.At(row, col), style))
			out++
			if (col+1)%n == 0 {
				style = core.NewStyle(t.colorAt(out, outWidth))
				b.SetCell(column+out, line+row, core.NewStyledCell(backChar, style))
				out++
			}
		}
	}
	b.Show()
	return nil
}

// colorAt returns the paint color for an output column.
func (t *Text) colorAt(col, width int) core.Color {
	color := t.fillColor()
	if !t.hasGrad || width <= 1 {
		return color
	}
	return color.Blend(t.gradient, float64(col)/float64(width-1))
}

// Print builds a transient renderer from all parameters and paints it
// immediately.
func Print(b backend.Backend, text string, textChar, backChar rune, size font.Size, color core.Color, line, column int) error {
	t := New()
	if err := t.SetFontSize(size); err != nil {
		return err
	}
	if err := t.SetText(text); err != nil {
		return err
	}
	t.SetTextChar(textChar)
	t.SetBackgroundChar(backChar)
	t.SetColor(color)
	return t.Paint(b, line, column)
}
