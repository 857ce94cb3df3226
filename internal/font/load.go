package font

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

//go:embed fonts/font_size_5.txt fonts/font_size_7.txt
var embedded embed.FS

// Load returns the built-in glyph table for the given size.
func Load(size Size) (*Table, error) {
	sub, err := fs.Sub(embedded, "fonts")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, size)
}

// LoadDir loads the glyph table for the given size from a font
// directory on disk.
func LoadDir(dir string, size Size) (*Table, error) {
	return LoadFS(os.DirFS(dir), size)
}

// LoadFS loads the glyph table for the given size from a file system.
// The resource is located by naming convention (font_size_<N>.txt). A
// missing or unreadable resource yields a ResourceError wrapping
// ErrMissingResource.
func LoadFS(fsys fs.FS, size Size) (*Table, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("unsupported font size %d", int(size))
	}
	name := size.ResourceName()
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResourceError{Name: name, Err: ErrMissingResource}
		}
		return nil, &ResourceError{Name: name, Err: err}
	}
	defer f.Close()

	return parse(f, name, size)
}

// parse reads a glyph resource. The token stream is ordered
// row-by-row across the whole alphabet: for each glyph row, for each
// alphabet character, size column tokens. This nesting order is a
// bit-exact contract with the resource writer.
func parse(r io.Reader, name string, size Size) (*Table, error) {
	n := int(size)
	glyphs := make([]Glyph, len(Alphabet))
	for i := range glyphs {
		glyphs[i] = Glyph{size: n, bits: make([]bool, n*n)}
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	token := 0

	for row := 0; row < n; row++ {
		for char := range glyphs {
			for col := 0; col < n; col++ {
				if !sc.Scan() {
					if err := sc.Err(); err != nil {
						return nil, &ResourceError{Name: name, Err: err}
					}
					return nil, &ResourceError{Name: name, Err: ErrShortResource}
				}
				switch sc.Text() {
				case "1":
					glyphs[char].bits[row*n+col] = true
				case "0":
					// background, already false
				default:
					return nil, &ParseError{Name: name, Token: token, Value: sc.Text()}
				}
				token++
			}
		}
	}

	return &Table{size: size, glyphs: glyphs}, nil
}
