package font

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

// fixtureResource builds a complete glyph resource for the given size
// where the cell (row, col) of the glyph at alphabet index i is on iff
// (row+col+i) is even. Tokens follow the wire order: row, then
// alphabet character, then column.
func fixtureResource(size int) string {
	var b strings.Builder
	for row := 0; row < size; row++ {
		for i := range Alphabet {
			for col := 0; col < size; col++ {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				if (row+col+i)%2 == 0 {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func fixtureFS(size int) fstest.MapFS {
	name := Size(size).ResourceName()
	return fstest.MapFS{
		name: &fstest.MapFile{Data: []byte(fixtureResource(size))},
	}
}

func TestLoadFSRoundTrip(t *testing.T) {
	table, err := LoadFS(fixtureFS(5), Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every glyph must reproduce the fixture pattern cell for cell.
	for _, r := range Alphabet {
		i, _ := Index(r)
		glyph, ok := table.Glyph(r)
		if !ok {
			t.Fatalf("missing glyph for %q", r)
		}
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				want := (row+col+i)%2 == 0
				if glyph.On(row, col) != want {
					t.Fatalf("glyph %q cell (%d, %d) = %v, want %v", r, row, col, glyph.On(row, col), want)
				}
			}
		}
	}
}

func TestLoadFSMissingResource(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, Small)
	if err == nil {
		t.Fatal("expected error for missing resource")
	}
	if !errors.Is(err, ErrMissingResource) {
		t.Errorf("expected ErrMissingResource, got %v", err)
	}

	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResourceError, got %T", err)
	}
	if re.Name != "font_size_5.txt" {
		t.Errorf("resource name = %q, want font_size_5.txt", re.Name)
	}
}

func TestLoadFSTruncatedResource(t *testing.T) {
	short := fixtureResource(5)
	short = short[:len(short)/2]
	fsys := fstest.MapFS{
		"font_size_5.txt": &fstest.MapFile{Data: []byte(short)},
	}

	_, err := LoadFS(fsys, Small)
	if !errors.Is(err, ErrShortResource) {
		t.Errorf("expected ErrShortResource, got %v", err)
	}
}

func TestLoadFSBadToken(t *testing.T) {
	data := fixtureResource(5)
	// Corrupt the third token.
	data = strings.Replace(data, "1", "x", 1)
	fsys := fstest.MapFS{
		"font_size_5.txt": &fstest.MapFile{Data: []byte(data)},
	}

	_, err := LoadFS(fsys, Small)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Value != "x" {
		t.Errorf("parse error value = %q, want \"x\"", pe.Value)
	}
}

func TestLoadFSInvalidSize(t *testing.T) {
	if _, err := LoadFS(fixtureFS(5), Size(6)); err == nil {
		t.Error("expected error for unsupported size")
	}
}

func TestLoadEmbeddedFonts(t *testing.T) {
	for _, size := range []Size{Small, Big} {
		table, err := Load(size)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", int(size), err)
		}
		if table.Size() != size {
			t.Errorf("table size = %d, want %d", int(table.Size()), int(size))
		}
		for _, r := range Alphabet {
			glyph, ok := table.Glyph(r)
			if !ok {
				t.Fatalf("size %d: missing glyph for %q", int(size), r)
			}
			if glyph.Size() != int(size) {
				t.Fatalf("size %d: glyph %q has size %d", int(size), r, glyph.Size())
			}
		}
	}
}

func TestEmbeddedSmallA(t *testing.T) {
	table, err := Load(Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	glyph, _ := table.Glyph('A')

	want := []string{
		"01110",
		"10001",
		"11111",
		"10001",
		"10001",
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if glyph.On(row, col) != (want[row][col] == '1') {
				t.Fatalf("glyph A cell (%d, %d) = %v, want %v", row, col, glyph.On(row, col), want[row][col] == '1')
			}
		}
	}
}

func TestEmbeddedSpaceIsBlank(t *testing.T) {
	table, err := Load(Small)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	glyph, _ := table.Glyph(' ')

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if glyph.On(row, col) {
				t.Fatalf("space glyph should be blank, cell (%d, %d) is on", row, col)
			}
		}
	}
}
