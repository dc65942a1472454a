// This base64 decoding implementation is strict about structure: the
// input length must be a multiple of 4, every character must belong to
// the alphabet or be the padding character, and padding may only close
// the final group as "xx==" or "xxx=". Bits below the last full byte of
// a padded group are not inspected.

package bases

import (
	"slices"
	"unsafe"
)

// decodedLen returns the maximum decoded length of base64
// text with the provided length. Padding in the final group
// shortens the real output by one or two bytes.
//
// If the input is zero the output will be zero. It is up
// to the calling context to choose how to handle the zero
// output case appropriately.
//
// If the input is invalid then -1 will be returned.
//
// invariants:
//
// - n must not be negative
func decodedLen(n int) int {
	if n%4 != 0 {
		return -1
	}

	return (n / 4) * 3
}

// DecodedLength returns the maximum number of bytes decoding
// n characters can produce, or -1 if n is negative or not a
// multiple of 4.
func (e *Encoding) DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	return decodedLen(n)
}

// DecodedLength returns StdEncoding.DecodedLength(n).
func DecodedLength(n int) int {
	return StdEncoding.DecodedLength(n)
}

// decode writes the decoded form of the n characters at srcPtr to
// dstPtr and returns the number of bytes written. base is added to
// error offsets.
//
// n must be a multiple of 4 and dstPtr must have room for decodedLen(n)
// bytes.
func (e *Encoding) decode(dstPtr, srcPtr unsafe.Pointer, n, base int) (int, error) {
	tab := &e.alphabet.dec
	groups := n / 4

	for g := range groups {
		c0 := tab[*(*byte)(srcPtr)]
		c1 := tab[*(*byte)(unsafe.Add(srcPtr, 1))]
		c2 := tab[*(*byte)(unsafe.Add(srcPtr, 2))]
		c3 := tab[*(*byte)(unsafe.Add(srcPtr, 3))]

		// only b64Invalid has the high bit set
		if (c0|c1|c2|c3)&0x80 != 0 {
			return g * 3, newDecodeError(ErrBadCharacter, base+g*4)
		}

		if (c0|c1|c2|c3)&b64Padding == 0 {
			*(*byte)(dstPtr) = (c0<<2 | c1>>4)
			*(*byte)(unsafe.Add(dstPtr, 1)) = (c1<<4 | c2>>2)
			*(*byte)(unsafe.Add(dstPtr, 2)) = (c2<<6 | c3)

			srcPtr = unsafe.Add(srcPtr, 4)
			dstPtr = unsafe.Add(dstPtr, 3)
			continue
		}

		// padded group: only "xx==" and "xxx=" are legal
		if (c0|c1)&b64Padding != 0 || (c2&b64Padding != 0 && c3&b64Padding == 0) {
			return g * 3, newDecodeError(ErrBadPadding, base+g*4)
		}

		written := g * 3
		if c2&b64Padding != 0 {
			*(*byte)(dstPtr) = (c0<<2 | c1>>4)
			written += 1
		} else {
			*(*byte)(dstPtr) = (c0<<2 | c1>>4)
			*(*byte)(unsafe.Add(dstPtr, 1)) = (c1<<4 | c2>>2)
			written += 2
		}

		if e.trailing == RejectTrailing && g+1 < groups {
			return written, newDecodeError(ErrBadPadding, base+(g+1)*4)
		}

		return written, nil
	}

	return groups * 3, nil
}

// UnsafeDecode decodes the source slice into the destination slice
// and returns the number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty, if its length is not a
// multiple of 4 or if the destination does not have enough space in the
// slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// The space required is ` (n/4)*3 ` where n is the length of src. The
// returned count is one or two less than that when src ends in padding.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= decodedLen(len(src))
//
// - len(src) is a valid base64 encoded value length
func (e *Encoding) UnsafeDecode(dst []byte, src []byte) (int, error) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := decodedLen(len(src)); n <= 0 {
		panic("base64: invalid decode source length")
	} else if len(dst) < n {
		panic("base64: decode destination too short")
	}

	return e.decode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), 0)
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// If src is not a multiple of 4 characters long ErrBadFormat is
// returned. Character and padding failures are returned as a
// *DecodeError wrapping ErrBadCharacter or ErrBadPadding.
//
// A nil slice is returned with any error.
func (e *Encoding) Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	n = decodedLen(n)
	if n < 0 {
		return nil, ErrBadFormat
	}

	dst := make([]byte, n)

	n, err := e.decode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src), 0)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecodeString returns the decoded form of src if src is not empty. If src
// is empty nil is returned.
//
// Errors are reported as they are by Decode.
func (e *Encoding) DecodeString(src string) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	n = decodedLen(n)
	if n < 0 {
		return nil, ErrBadFormat
	}

	dst := make([]byte, n)

	n, err := e.decode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src), 0)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then dst is returned with its
// original length alongside the error. Bytes beyond that length in
// the backing array may have been overwritten. If the data is sensitive
// consider clearing them.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return dst, nil
	}

	n = decodedLen(n)
	if n < 0 {
		return dst, ErrBadFormat
	}
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	n, err := e.decode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src), 0)
	if err != nil {
		return dst[:orig], err
	}

	return dst[:orig+n], nil
}
