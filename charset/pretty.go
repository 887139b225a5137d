package charset

import (
	"strconv"
	"strings"

	"github.com/stateforge/stateforge"
)

const (
	printableLo = 0x20
	printableHi = 0x7e
)

func isPrintableASCII(p stateforge.CodePoint) bool {
	return p >= printableLo && p <= printableHi
}

func escapeForLiteral(r rune) string {
	switch r {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	default:
		return string(r)
	}
}

// compressRuns replaces every maximal run of >=3 consecutive code points
// with "first-last", a run of length 2 with the two adjacent characters,
// and anything shorter with the character itself.
func compressRuns(points []stateforge.CodePoint) string {
	var b strings.Builder
	i := 0
	for i < len(points) {
		j := i
		for j+1 < len(points) && points[j+1] == points[j]+1 {
			j++
		}
		runLen := j - i + 1
		switch {
		case runLen >= 3:
			b.WriteString(escapeForLiteral(rune(points[i])))
			b.WriteByte('-')
			b.WriteString(escapeForLiteral(rune(points[j])))
		case runLen == 2:
			b.WriteString(escapeForLiteral(rune(points[i])))
			b.WriteString(escapeForLiteral(rune(points[j])))
		default:
			b.WriteString(escapeForLiteral(rune(points[i])))
		}
		i = j + 1
	}
	return b.String()
}

// Pretty renders a set of code points as a compact, human-readable
// listing: printable ASCII inline (with runs of >=3 consecutive code
// points collapsed to "first-last"), non-ASCII as a comma-separated
// numeric list. A literal '-' member is excluded from run-compression and
// re-appended at the end of the rendered string, so it never gets
// confused with a range marker. The whole thing is quoted in a form
// suitable for diagnostic embedding (e.g. error messages).
func Pretty(s Set) string {
	asciiPart, numericPart := prettyParts(s)
	switch {
	case asciiPart != "" && numericPart != "":
		return `"` + asciiPart + `"+` + numericPart
	case asciiPart != "":
		return `"` + asciiPart + `"`
	case numericPart != "":
		return numericPart
	default:
		return `""`
	}
}

// PrettyBare renders s the same way Pretty does but without Pretty's own
// diagnostic-quoting wrapper — for composing into a context that applies
// its own quoting, such as a dot label.
func PrettyBare(s Set) string {
	asciiPart, numericPart := prettyParts(s)
	switch {
	case asciiPart != "" && numericPart != "":
		return asciiPart + "+" + numericPart
	default:
		return asciiPart + numericPart
	}
}

func prettyParts(s Set) (asciiPart, numericPart string) {
	if s.Empty() {
		return "", ""
	}
	sorted := s.Sorted()

	var ascii []stateforge.CodePoint
	var other []stateforge.CodePoint
	hasDash := false
	for _, p := range sorted {
		switch {
		case p == stateforge.CodePoint('-'):
			hasDash = true
		case isPrintableASCII(p):
			ascii = append(ascii, p)
		default:
			other = append(other, p)
		}
	}

	if len(ascii) > 0 || hasDash {
		asciiPart = compressRuns(ascii)
		if hasDash {
			asciiPart += "-"
		}
	}
	if len(other) > 0 {
		parts := make([]string, len(other))
		for i, p := range other {
			parts[i] = strconv.Itoa(int(p))
		}
		numericPart = strings.Join(parts, ",")
	}
	return asciiPart, numericPart
}
