package bases_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephcopenhaver/bases"
)

func ExampleB64Encode() {
	fmt.Println(bases.B64Encode([]byte("fooba")))
	// Output: Zm9vYmE=
}

func ExampleEncoding_Decode() {
	b, err := bases.URLEncoding.Decode([]byte("-_-_"))
	fmt.Printf("%x %v\n", b, err)

	_, err = bases.StdEncoding.Decode([]byte("AB=A"))
	fmt.Println(errors.Is(err, bases.ErrBadPadding), err)
	// Output:
	// fbffbf <nil>
	// true base64: bad padding at offset 0
}

func ExampleEncoding_WithTrailing() {
	_, err := bases.StdEncoding.DecodeString("Zg==AAAA")
	fmt.Println(err)

	b, err := bases.StdEncoding.WithTrailing(bases.IgnoreTrailing).DecodeString("Zg==AAAA")
	fmt.Println(string(b), err)
	// Output:
	// base64: bad padding at offset 4
	// f <nil>
}

func ExampleEncoding_EncodeTo() {
	var sb strings.Builder
	if err := bases.StdEncoding.EncodeTo(&sb, []byte("foobar")); err != nil {
		panic(err)
	}
	fmt.Println(sb.String())
	// Output: Zm9vYmFy
}

func ExampleFor() {
	_, err := bases.For(bases.Base32)
	fmt.Println(err)
	// Output: bases: not implemented: base32
}
