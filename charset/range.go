package charset

import (
	"fmt"

	"github.com/stateforge/stateforge"
)

// ExpandRangeString expands the builder's convenience range syntax: a
// string in which "a-b" denotes every code point from a to b inclusive,
// and any other rune is a literal member. A trailing '-' (nothing follows
// it) is a literal dash rather than the start of a range; this is also
// the format of Pretty's quoted inline part, so that part round-trips
// through ExpandRangeString for printable ASCII other than '"' and '\'
// (which Pretty backslash-escapes). Pretty's numeric list of other code
// points is not range syntax and does not expand back.
func ExpandRangeString(spec string) (Set, error) {
	runes := []rune(spec)
	out := NewSet()
	i := 0
	for i < len(runes) {
		if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := runes[i], runes[i+2]
			if hi < lo {
				return Set{}, fmt.Errorf("invalid range %q: end before start", string(runes[i:i+3]))
			}
			out = out.Union(NewRange(stateforge.CodePoint(lo), stateforge.CodePoint(hi)))
			i += 3
			continue
		}
		out = out.Add(stateforge.CodePoint(runes[i]))
		i++
	}
	return out, nil
}

// ExpandIntRange expands an integer range lo..hi inclusive, the other
// half of the builder's range convenience surface (an integer range
// accepted directly, rather than via string span notation).
func ExpandIntRange(lo, hi int) Set {
	return NewRange(stateforge.CodePoint(lo), stateforge.CodePoint(hi))
}
