// Package bases implements RFC4648 base64 encoding and decoding over the
// standard and URL-safe alphabets.
//
// Encoding is total: every input, including an empty one, has exactly one
// padded encoding whose length is 4*ceil(n/3). Decoding is strict and fails
// with ErrBadFormat, ErrBadCharacter or ErrBadPadding rather than guessing.
//
// Base16 and Base32 are reserved members of the family; For reports them as
// ErrNotImplemented.
//
// http://www.rfc-editor.org/rfc/rfc4648
package bases
