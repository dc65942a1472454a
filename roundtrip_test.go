package bases

import (
	"encoding/base64"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks four random inputs of every length from 1 to 511
// against encoding/base64.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(4648, 64))

	oracles := []struct {
		enc    *Encoding
		oracle *base64.Encoding
	}{
		{StdEncoding, base64.StdEncoding},
		{URLEncoding, base64.URLEncoding},
	}

	for n := 1; n < 512; n++ {
		for range 4 {
			src := make([]byte, n)
			for i := range src {
				src[i] = byte(rng.Uint32())
			}

			for _, o := range oracles {
				enc := o.enc.Encode(src)
				if !assert.Equal(t, o.oracle.EncodeToString(src), string(enc), "length %d", n) {
					return
				}
				assert.Len(t, enc, 4*((n+2)/3))

				dec, err := o.enc.Decode(enc)
				require.NoError(t, err)
				if !assert.Equal(t, src, dec, "length %d", n) {
					return
				}
			}
		}
	}
}

func TestEncode_givenPackageHelpers(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	vectors := map[string]string{
		"":       "",
		"f":      "Zg==",
		"fo":     "Zm8=",
		"foo":    "Zm9v",
		"foob":   "Zm9vYg==",
		"fooba":  "Zm9vYmE=",
		"foobar": "Zm9vYmFy",
	}

	for in, out := range vectors {
		is.Equal(out, B64Encode([]byte(in)))
		is.Equal(out, EncodeString(in))
		is.Equal(out, string(Encode([]byte(in))))
		is.Equal("x"+out, string(AppendEncode([]byte("x"), []byte(in))))

		dec, err := B64Decode(out)
		is.NoError(err)
		is.Equal(in, string(dec))
	}
}

func TestEncoding_concurrentUse(t *testing.T) {
	t.Parallel()

	src := []byte("concurrent readers share one decode table")
	want := base64.StdEncoding.EncodeToString(src)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 100 {
				enc := StdEncoding.EncodeString(string(src))
				dec, err := StdEncoding.DecodeString(enc)
				assert.NoError(t, err)
				assert.Equal(t, want, enc)
				assert.Equal(t, src, dec)
			}
		}()
	}
	wg.Wait()
}

func TestEncoding_WithTrailing(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(RejectTrailing, StdEncoding.Trailing())
	is.Equal(IgnoreTrailing, LegacyEncoding.Trailing())
	is.Same(StdAlphabet, LegacyEncoding.Alphabet())

	// the receiver is left untouched
	e := URLEncoding.WithTrailing(IgnoreTrailing)
	is.Equal(RejectTrailing, URLEncoding.Trailing())
	is.Equal(IgnoreTrailing, e.Trailing())
	is.Same(URLAlphabet, e.Alphabet())

	is.PanicsWithValue("base64: unknown trailing policy", func() {
		StdEncoding.WithTrailing(TrailingPolicy(7))
	})
	is.PanicsWithValue("base64: nil alphabet", func() {
		NewEncoding(nil)
	})
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "f", "fo", "foo", "foob", "fooba", "foobar", "\xfb\xff\xbf"} {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, src []byte) {
		for _, enc := range []*Encoding{StdEncoding, URLEncoding} {
			s := enc.EncodeString(string(src))
			require.Len(t, s, 4*((len(src)+2)/3))

			dec, err := enc.DecodeString(s)
			require.NoError(t, err)
			require.Equal(t, len(src), len(dec))
			if len(src) > 0 {
				require.Equal(t, src, dec)
			}
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, s := range []string{"", "A", "A!AA", "A=AA", "AB=A", "Zm9vYmE=", "Zm8=", "Zg==AAAA"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		dec, err := StdEncoding.DecodeString(s)

		strict := base64.StdEncoding.Strict()
		want, oerr := strict.DecodeString(s)

		// encoding/base64 also rejects non-zero bits below a padded tail
		// and skips line endings, so only success is compared
		if err == nil && oerr == nil {
			require.Equal(t, len(want), len(dec))
			if len(want) > 0 {
				require.Equal(t, want, dec)
			}
		}

		if err != nil {
			require.Nil(t, dec)
		}
	})
}
