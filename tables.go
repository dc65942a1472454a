package bases

import (
	"fmt"
)

const (
	b64Invalid = 0xFF
	b64Padding = 0x40

	// StdChars is the RFC4648 section 4 alphabet.
	StdChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// URLChars is the RFC4648 section 5 alphabet. It differs from StdChars
	// only at indexes 62 and 63.
	URLChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	StdPadding = '='
)

// Alphabet pairs the 64 encode characters with the decode table derived
// from them. An Alphabet is never mutated after construction and is safe
// for concurrent use.
type Alphabet struct {
	enc [64]byte
	dec [256]byte
	pad byte
}

var (
	StdAlphabet = mustAlphabet(StdChars, StdPadding)
	URLAlphabet = mustAlphabet(URLChars, StdPadding)
)

func mustAlphabet(chars string, pad byte) *Alphabet {
	a, err := NewAlphabet(chars, pad)
	if err != nil {
		panic(err)
	}

	return a
}

// NewAlphabet returns an Alphabet for chars using pad as the padding
// character.
//
// chars must hold exactly 64 distinct bytes and must not contain pad.
func NewAlphabet(chars string, pad byte) (*Alphabet, error) {
	if len(chars) != 64 {
		return nil, fmt.Errorf("%w: length is %d, want 64", ErrInvalidAlphabet, len(chars))
	}

	var seen [256]bool
	seen[pad] = true

	for i := range len(chars) {
		c := chars[i]
		if seen[c] {
			if c == pad {
				return nil, fmt.Errorf("%w: padding character %q at index %d", ErrInvalidAlphabet, c, i)
			}
			return nil, fmt.Errorf("%w: duplicate character %q at index %d", ErrInvalidAlphabet, c, i)
		}
		seen[c] = true
	}

	a := Alphabet{
		dec: decodeTable(chars, pad),
		pad: pad,
	}
	copy(a.enc[:], chars)

	return &a, nil
}

// Chars returns the 64 encode characters in index order.
func (a *Alphabet) Chars() string {
	return string(a.enc[:])
}

// Padding returns the padding character.
func (a *Alphabet) Padding() byte {
	return a.pad
}

// decodeTable maps every byte value to a sextet, b64Padding or b64Invalid.
//
// No validation happens here: a repeated character takes the value of its
// last index, and a pad that also appears in chars decodes as data.
func decodeTable(chars string, pad byte) [256]byte {
	var dec [256]byte

	for i := range dec {
		dec[i] = b64Invalid
	}

	dec[pad] = b64Padding

	for i := range len(chars) {
		dec[chars[i]] = byte(i)
	}

	return dec
}
