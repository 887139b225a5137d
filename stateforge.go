package stateforge

import "fmt"

// CodePoint is a single Unicode code point, or, for narrow-encoded automata,
// a single byte value. All character sets manipulated by this module are
// sets of CodePoint.
type CodePoint int32

// String renders a code point the way diagnostics want to see it: the
// printable ASCII rune itself, or a numeric escape for anything else.
func (c CodePoint) String() string {
	if c >= 0x20 && c < 0x7f {
		return fmt.Sprintf("%q", rune(c))
	}
	return fmt.Sprintf("U+%04X", int32(c))
}

// Encoding selects how raw bytes are decoded into code points (see package
// charset). It replaces the teacher's global encoding switch with an
// explicit parameter threaded through the builder.
type Encoding int

const (
	// UTF8 decodes standard 1-4 byte UTF-8 sequences.
	UTF8 Encoding = iota
	// Narrow treats every byte as its own code point (no multi-byte input).
	Narrow
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Narrow:
		return "narrow"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ErrorState is the reserved pseudo-state name used as the implicit
// terminal sink when no explicit or default transition matches.
const ErrorState = "error"
