package font

import (
	"errors"
	"fmt"
)

// Errors returned by font loading.
var (
	// ErrMissingResource indicates the font resource file doesn't exist
	// or can't be opened.
	ErrMissingResource = errors.New("font resource not found")

	// ErrShortResource indicates the resource ended before every glyph
	// cell was read.
	ErrShortResource = errors.New("font resource truncated")
)

// ResourceError wraps a failure to open or read a font resource.
type ResourceError struct {
	// Name is the resource name that failed.
	Name string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("font resource %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ParseError reports an invalid token in a font resource. Tokens are
// numbered in reading order starting at zero.
type ParseError struct {
	// Name is the resource name being parsed.
	Name string
	// Token is the index of the offending token.
	Token int
	// Value is the token text.
	Value string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("font resource %s: token %d: invalid cell %q (want 0 or 1)", e.Name, e.Token, e.Value)
}
