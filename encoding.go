package bases

// TrailingPolicy selects what decoding does with input that follows a
// padded group.
type TrailingPolicy uint8

const (
	// RejectTrailing fails with ErrBadPadding when any character follows
	// a padded group.
	RejectTrailing TrailingPolicy = iota
	// IgnoreTrailing stops at the first padded group and never inspects
	// the rest of the input.
	IgnoreTrailing
)

// Encoding is a base64 codec bound to one Alphabet. An Encoding is
// immutable and safe for concurrent use.
type Encoding struct {
	alphabet *Alphabet
	trailing TrailingPolicy
}

var (
	// StdEncoding uses StdAlphabet and rejects trailing data.
	StdEncoding = NewEncoding(StdAlphabet)
	// URLEncoding uses URLAlphabet and rejects trailing data.
	URLEncoding = NewEncoding(URLAlphabet)
	// LegacyEncoding uses StdAlphabet and silently drops anything after
	// the first padded group.
	LegacyEncoding = StdEncoding.WithTrailing(IgnoreTrailing)
)

// NewEncoding returns an Encoding for a that rejects trailing data.
// It panics if a is nil.
func NewEncoding(a *Alphabet) *Encoding {
	if a == nil {
		panic("base64: nil alphabet")
	}

	return &Encoding{alphabet: a}
}

// WithTrailing returns a copy of e using policy p.
func (e *Encoding) WithTrailing(p TrailingPolicy) *Encoding {
	switch p {
	case RejectTrailing, IgnoreTrailing:
	default:
		panic("base64: unknown trailing policy")
	}

	ne := *e
	ne.trailing = p

	return &ne
}

// Alphabet returns the alphabet e encodes with.
func (e *Encoding) Alphabet() *Alphabet {
	return e.alphabet
}

// Trailing returns the trailing data policy of e.
func (e *Encoding) Trailing() TrailingPolicy {
	return e.trailing
}

//
// package level helpers use StdEncoding
//

// Encode returns StdEncoding.Encode(src).
func Encode(src []byte) []byte {
	return StdEncoding.Encode(src)
}

// EncodeString returns StdEncoding.EncodeString(src).
func EncodeString(src string) string {
	return StdEncoding.EncodeString(src)
}

// AppendEncode returns StdEncoding.AppendEncode(dst, src).
func AppendEncode(dst, src []byte) []byte {
	return StdEncoding.AppendEncode(dst, src)
}

// Decode returns StdEncoding.Decode(src).
func Decode(src []byte) ([]byte, error) {
	return StdEncoding.Decode(src)
}

// DecodeString returns StdEncoding.DecodeString(src).
func DecodeString(src string) ([]byte, error) {
	return StdEncoding.DecodeString(src)
}

// AppendDecode returns StdEncoding.AppendDecode(dst, src).
func AppendDecode(dst, src []byte) ([]byte, error) {
	return StdEncoding.AppendDecode(dst, src)
}

// B64Encode encodes src as text with the general alphabet.
func B64Encode(src []byte) string {
	return string(StdEncoding.Encode(src))
}

// B64Decode decodes text encoded with the general alphabet.
func B64Decode(src string) ([]byte, error) {
	return StdEncoding.DecodeString(src)
}
