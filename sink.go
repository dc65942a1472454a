package bases

import (
	"unsafe"
)

// Sink is a growable, append-only byte buffer. *bytes.Buffer and
// *strings.Builder both satisfy it.
type Sink interface {
	Grow(n int)
	Write(p []byte) (int, error)
}

// sinkChunk is the number of source bytes encoded per Write. It is a
// multiple of 3 so only the final chunk can need padding.
const sinkChunk = 3 * 256

// EncodeTo writes the encoded form of src to w. Nothing is written when
// src is empty. The only errors returned are those of w.
func (e *Encoding) EncodeTo(w Sink, src []byte) error {
	n := len(src)
	if n == 0 {
		return nil
	}

	w.Grow(encodedLen(n))

	var buf [sinkChunk / 3 * 4]byte

	for off := 0; off < n; off += sinkChunk {
		m := min(sinkChunk, n-off)

		e.encode(unsafe.Pointer(&buf[0]), unsafe.Pointer(&src[off]), m)

		if _, err := w.Write(buf[:encodedLen(m)]); err != nil {
			return err
		}
	}

	return nil
}

// DecodeTo writes the decoded form of src to w. Decoding errors are the
// same as those of Decode, with offsets relative to the start of src.
//
// Bytes decoded before a failing group may already have been written to
// w when an error is returned.
func (e *Encoding) DecodeTo(w Sink, src []byte) error {
	n := len(src)
	if n == 0 {
		return nil
	}

	maxLen := decodedLen(n)
	if maxLen < 0 {
		return ErrBadFormat
	}

	w.Grow(maxLen)

	var buf [sinkChunk]byte
	const chunk = sinkChunk / 3 * 4

	for off := 0; off < n; off += chunk {
		m := min(chunk, n-off)

		written, err := e.decode(unsafe.Pointer(&buf[0]), unsafe.Pointer(&src[off]), m, off)
		if written > 0 {
			if _, werr := w.Write(buf[:written]); werr != nil {
				return werr
			}
		}
		if err != nil {
			return err
		}

		// a short chunk means a padded group ended the data
		if written < decodedLen(m) {
			if e.trailing == RejectTrailing && off+m < n {
				return newDecodeError(ErrBadPadding, off+m)
			}

			return nil
		}
	}

	return nil
}
