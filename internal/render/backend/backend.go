// Package backend provides display-surface abstraction for the banner
// renderer. Implementations handle actual drawing to the terminal or
// other display surfaces.
package backend

import "github.com/dshills/bigtext/internal/render/core"

// EventType identifies the type of display event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a display event. Only key presses and resizes are
// reported; the banner surface has no pointer interaction.
type Event struct {
	Type EventType

	// Key event fields
	Rune rune

	// Resize event fields
	Width, Height int
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current surface dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the surface are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.Rect, cell core.Cell)

	// Clear clears the surface with the default style.
	Clear()

	// Show synchronizes buffered changes with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	// This is a blocking call.
	PollEvent() Event
}

// Null is an in-memory backend for testing.
type Null struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 16),
	}
}

func (b *Null) Init() error {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
	return nil
}

func (b *Null) Shutdown() {}

func (b *Null) Size() (int, int) {
	return b.width, b.height
}

func (b *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
// Returns an empty cell for positions outside the surface.
func (b *Null) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *Null) Fill(rect core.Rect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < b.height; y++ {
		for x := rect.Left; x < rect.Right && x < b.width; x++ {
			if x >= 0 && y >= 0 {
				b.cells[y][x] = cell
			}
		}
	}
}

func (b *Null) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *Null) Show() {}

func (b *Null) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *Null) HideCursor() {
	b.cursorVisible = false
}

func (b *Null) PollEvent() Event {
	return <-b.events
}

// PostEvent posts a synthetic event for PollEvent to return.
// Events are dropped if the queue is full.
func (b *Null) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// CursorPosition returns the current cursor position for testing.
func (b *Null) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns the runes of row y as a string, for test assertions.
func (b *Null) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := range runes {
		runes[x] = b.cells[y][x].Rune
	}
	return string(runes)
}
