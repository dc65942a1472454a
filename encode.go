package bases

import (
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to
// encode n bytes. It returns -1 if the input byte length
// cannot be encoded properly.
//
// The result is always 4*ceil(n/3). If the input is zero, zero
// will be returned. Remember that UnsafeEncode requires the src
// argument to have a length greater than zero.
func (e *Encoding) EncodedLength(n int) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

// EncodedLength returns StdEncoding.EncodedLength(n).
func EncodedLength(n int) int {
	return StdEncoding.EncodedLength(n)
}

func encodedLenExpression(n int) int {
	result := (n / 3) * 4
	if n%3 != 0 {
		result += 4
	}

	return result
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("base64: invalid encode source length")
	}

	return result
}

func (e *Encoding) encode(dstPtr, srcPtr unsafe.Pointer, n int) {
	tab := &e.alphabet.enc

	for range n / 3 {
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))
		b2 := *(*byte)(unsafe.Add(srcPtr, 2))

		*(*byte)(dstPtr) = tab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = tab[((b0<<4)|(b1>>4))&63]
		*(*byte)(unsafe.Add(dstPtr, 2)) = tab[((b1<<2)|(b2>>6))&63]
		*(*byte)(unsafe.Add(dstPtr, 3)) = tab[b2&63]

		srcPtr = unsafe.Add(srcPtr, 3)
		dstPtr = unsafe.Add(dstPtr, 4)
	}

	pad := e.alphabet.pad

	switch n % 3 {
	case 1:
		b0 := *(*byte)(srcPtr)

		*(*byte)(dstPtr) = tab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = tab[(b0<<4)&63]
		*(*byte)(unsafe.Add(dstPtr, 2)) = pad
		*(*byte)(unsafe.Add(dstPtr, 3)) = pad
	case 2:
		b0 := *(*byte)(srcPtr)
		b1 := *(*byte)(unsafe.Add(srcPtr, 1))

		*(*byte)(dstPtr) = tab[b0>>2]
		*(*byte)(unsafe.Add(dstPtr, 1)) = tab[((b0<<4)|(b1>>4))&63]
		*(*byte)(unsafe.Add(dstPtr, 2)) = tab[(b1<<2)&63]
		*(*byte)(unsafe.Add(dstPtr, 3)) = pad
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// The encoded form always occupies ` ((n+2)/3)*4 ` bytes of dst where
// n is the length of src.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src))
func (e *Encoding) UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src)); len(dst) < n {
		panic("base64: encode destination too short")
	}

	e.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func (e *Encoding) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	e.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func (e *Encoding) EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	e.encode(unsafe.Pointer(&dst[0]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	e.encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(&src[0]), len(src))

	return dst
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (e *Encoding) AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	e.encode(unsafe.Pointer(&dst[orig]), unsafe.Pointer(unsafe.StringData(src)), len(src))

	return dst
}
