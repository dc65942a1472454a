package bases

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrBadFormat indicates the encoded length is not a multiple of 4.
	ErrBadFormat = errors.New("base64: bad format (length must be a multiple of 4)")

	// ErrBadCharacter indicates a character that is neither in the
	// alphabet nor the padding character.
	ErrBadCharacter = errors.New("base64: bad character")

	// ErrBadPadding indicates padding in a position no legal terminal
	// group allows, or data after a padded group when trailing data is
	// rejected.
	ErrBadPadding = errors.New("base64: bad padding")

	// ErrInvalidAlphabet indicates an alphabet definition that cannot map
	// sextets one to one.
	ErrInvalidAlphabet = errors.New("base64: invalid alphabet")

	// ErrNotImplemented indicates a declared base with no codec behind it.
	ErrNotImplemented = errors.New("bases: not implemented")

	// ErrUnknownBase indicates a Base value outside the declared set.
	ErrUnknownBase = errors.New("bases: unknown base")
)

// DecodeError locates a decode failure. Offset is the index of the first
// character of the 4 character group that failed.
type DecodeError struct {
	Err    error // ErrBadCharacter or ErrBadPadding
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(sentinel error, offset int) error {
	return &DecodeError{
		Err:    sentinel,
		Offset: offset,
	}
}
