package charset

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/stateforge/stateforge"
)

// UTF8 and Narrow re-export the stateforge encodings for use with Decode
// and Encode.
const (
	UTF8   = stateforge.UTF8
	Narrow = stateforge.Narrow
)

// tracer traces with key 'stateforge.charset'.
func tracer() tracing.Trace {
	return tracing.Select("stateforge.charset")
}

// InvalidEncodingError is returned by Decode when the input bytes do not
// form a valid code point under the requested encoding.
type InvalidEncodingError struct {
	Encoding stateforge.Encoding
	Bytes    []byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid %s encoding for bytes %x", e.Encoding, e.Bytes)
}

// Decode reads a single code point from the front of b, using the given
// encoding. It returns the decoded code point and the number of bytes
// consumed.
//
// For UTF8 this is a standard 1-4 byte decode with strict
// continuation-byte validation (delegated to unicode/utf8, which is the
// standard library's implementation of exactly this rule and is not
// superseded by anything in this module's dependency set). For Narrow,
// the single byte is the code point; input of more than one byte fails.
func Decode(b []byte, enc stateforge.Encoding) (stateforge.CodePoint, int, error) {
	if len(b) == 0 {
		return 0, 0, &InvalidEncodingError{Encoding: enc, Bytes: b}
	}
	switch enc {
	case Narrow:
		if len(b) > 1 {
			return 0, 0, &InvalidEncodingError{Encoding: enc, Bytes: b}
		}
		return stateforge.CodePoint(b[0]), 1, nil
	case UTF8:
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			tracer().Errorf("invalid utf-8 lead byte %x", b[0])
			return 0, 0, &InvalidEncodingError{Encoding: enc, Bytes: b}
		}
		return stateforge.CodePoint(r), size, nil
	default:
		return 0, 0, &InvalidEncodingError{Encoding: enc, Bytes: b}
	}
}

// Encode renders a single code point back into bytes for the given
// encoding. Narrow fails if the code point does not fit in a byte.
func Encode(p stateforge.CodePoint, enc stateforge.Encoding) ([]byte, error) {
	switch enc {
	case Narrow:
		if p < 0 || p > 0xff {
			return nil, &InvalidEncodingError{Encoding: enc}
		}
		return []byte{byte(p)}, nil
	case UTF8:
		if !utf8.ValidRune(rune(p)) {
			return nil, &InvalidEncodingError{Encoding: enc}
		}
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, rune(p))
		return buf[:n], nil
	default:
		return nil, &InvalidEncodingError{Encoding: enc}
	}
}
