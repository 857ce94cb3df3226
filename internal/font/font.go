// Package font provides the bitmap glyph tables used to draw block
// letters. A table maps every character of the fixed alphabet to a
// square bitmap; tables are immutable once loaded.
package font

import (
	"fmt"
	"strings"
)

// Alphabet is the fixed ordered set of supported characters. The order
// is part of the font resource wire contract: glyph bitmaps are stored
// in exactly this sequence.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ .,!?0123456789"

// Size is the side length of a glyph bitmap (rows = columns).
type Size int

// Supported glyph sizes.
const (
	Small Size = 5
	Big   Size = 7
)

// Valid returns true if the size is one of the supported sizes.
func (s Size) Valid() bool {
	return s == Small || s == Big
}

// String returns the size as its numeric string.
func (s Size) String() string {
	return fmt.Sprintf("%d", int(s))
}

// ParseSize parses a size name ("small", "big") or numeric value
// ("5", "7").
func ParseSize(v string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "small", "5":
		return Small, nil
	case "big", "7":
		return Big, nil
	default:
		return 0, fmt.Errorf("unknown font size %q (want small or big)", v)
	}
}

// ResourceName returns the conventional resource file name for a size.
func (s Size) ResourceName() string {
	return fmt.Sprintf("font_size_%d.txt", int(s))
}

// charIndex maps a character code to its position in Alphabet, or -1.
// Direct indexing avoids the linear scan and the "not found" sentinel
// a substring search would need.
var charIndex = buildCharIndex()

func buildCharIndex() [128]int8 {
	var idx [128]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, r := range Alphabet {
		idx[r] = int8(i)
	}
	return idx
}

// Index returns the alphabet position of r, or false if r is not a
// supported character.
func Index(r rune) (int, bool) {
	if r < 0 || r >= 128 {
		return 0, false
	}
	i := charIndex[r]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Supported returns true if r is in the alphabet.
func Supported(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Glyph is one character's bitmap: a size×size grid of on/off cells
// stored as a flat row-major slice.
type Glyph struct {
	size int
	bits []bool
}

// Size returns the glyph side length.
func (g Glyph) Size() int {
	return g.size
}

// On reports whether the cell at (row, col) is a foreground cell.
// Out-of-range positions are background.
func (g Glyph) On(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.bits[row*g.size+col]
}

// Table holds one glyph per alphabet character for a single size.
type Table struct {
	size   Size
	glyphs []Glyph
}

// Size returns the glyph size of the table.
func (t *Table) Size() Size {
	return t.size
}

// Glyph returns the bitmap for r. ok is false if r is not in the
// alphabet.
func (t *Table) Glyph(r rune) (Glyph, bool) {
	i, ok := Index(r)
	if !ok {
		return Glyph{}, false
	}
	return t.glyphs[i], true
}
