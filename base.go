package bases

import (
	"fmt"
)

// Base names a member of the codec family.
type Base uint8

const (
	Base16 Base = iota + 1
	Base32
	Base64
)

func (b Base) String() string {
	switch b {
	case Base16:
		return "base16"
	case Base32:
		return "base32"
	case Base64:
		return "base64"
	}

	return fmt.Sprintf("Base(%d)", uint8(b))
}

// Codec is the operation set every member of the family provides.
type Codec interface {
	Encode(src []byte) []byte
	EncodeString(src string) string
	Decode(src []byte) ([]byte, error)
	DecodeString(src string) ([]byte, error)
}

var _ Codec = (*Encoding)(nil)

// For returns the standard codec for b.
//
// Base16 and Base32 are declared but have no codec; they fail with
// ErrNotImplemented instead of producing empty output.
func For(b Base) (Codec, error) {
	switch b {
	case Base64:
		return StdEncoding, nil
	case Base16, Base32:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, b)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownBase, uint8(b))
}

// ParseBase returns the Base for its radix: 16, 32 or 64.
func ParseBase(radix int) (Base, error) {
	switch radix {
	case 16:
		return Base16, nil
	case 32:
		return Base32, nil
	case 64:
		return Base64, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownBase, radix)
}
