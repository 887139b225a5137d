package automaton

import (
	"fmt"
	"strings"
)

// SanitizeIdentifier replaces any code point outside [A-Za-z0-9_] in name
// with '_', producing a valid C++ identifier fragment (spec.md §4.5).
func SanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// NameCollisionError is returned when two distinct declared names
// sanitize to the same identifier.
type NameCollisionError struct {
	Sanitized string
	Names     []string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("automaton: names %v all sanitize to %q", e.Names, e.Sanitized)
}

// CheckSanitizationInjective verifies that no two distinct names in names
// sanitize to the same identifier, returning *NameCollisionError on the
// first collision found (stable order).
func CheckSanitizationInjective(names []string) error {
	seen := make(map[string][]string)
	order := make([]string, 0, len(names))
	for _, n := range names {
		s := SanitizeIdentifier(n)
		if _, ok := seen[s]; !ok {
			order = append(order, s)
		}
		seen[s] = append(seen[s], n)
	}
	for _, s := range order {
		if len(seen[s]) > 1 {
			return &NameCollisionError{Sanitized: s, Names: seen[s]}
		}
	}
	return nil
}
