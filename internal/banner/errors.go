package banner

import (
	"errors"
	"fmt"
)

// ErrUnsupportedChar indicates input text contains a character outside
// the supported alphabet.
var ErrUnsupportedChar = errors.New("unsupported character")

// UnsupportedCharError reports the first unsupported character found
// in a text. The renderer's prior text is left unchanged.
type UnsupportedCharError struct {
	// Char is the offending character.
	Char rune
}

// Error implements the error interface.
func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("character %q is unavailable", e.Char)
}

// Is implements error matching against ErrUnsupportedChar.
func (e *UnsupportedCharError) Is(target error) bool {
	return target == ErrUnsupportedChar
}
