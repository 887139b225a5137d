package charset

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/stateforge/stateforge"
)

func codePointComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(stateforge.CodePoint)), int(b.(stateforge.CodePoint)))
}

// Set is a set of code points, ordered for stable iteration and rendering.
// It is the currency of every character-set key in the automaton model and
// the unit the Partitioner refines.
type Set struct {
	tree *treeset.Set
}

// NewSet builds a Set from the given code points.
func NewSet(points ...stateforge.CodePoint) Set {
	s := Set{tree: treeset.NewWith(codePointComparator)}
	for _, p := range points {
		s.tree.Add(p)
	}
	return s
}

// NewRange builds a Set containing every code point from lo to hi inclusive.
func NewRange(lo, hi stateforge.CodePoint) Set {
	s := Set{tree: treeset.NewWith(codePointComparator)}
	for p := lo; p <= hi; p++ {
		s.tree.Add(p)
	}
	return s
}

func (s Set) ensure() Set {
	if s.tree == nil {
		return Set{tree: treeset.NewWith(codePointComparator)}
	}
	return s
}

// Add inserts a code point, returning the (possibly newly allocated) set.
func (s Set) Add(p stateforge.CodePoint) Set {
	s = s.ensure()
	s.tree.Add(p)
	return s
}

// Len returns the number of code points in the set.
func (s Set) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Size()
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s.Len() == 0
}

// Contains reports whether p is a member of s.
func (s Set) Contains(p stateforge.CodePoint) bool {
	if s.tree == nil {
		return false
	}
	return s.tree.Contains(p)
}

// Sorted returns the set's members in ascending order.
func (s Set) Sorted() []stateforge.CodePoint {
	if s.tree == nil {
		return nil
	}
	vals := s.tree.Values()
	out := make([]stateforge.CodePoint, len(vals))
	for i, v := range vals {
		out[i] = v.(stateforge.CodePoint)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := Set{tree: treeset.NewWith(codePointComparator)}
	if s.tree != nil {
		for _, v := range s.tree.Values() {
			out.tree.Add(v)
		}
	}
	return out
}

// Equal reports whether s and other contain exactly the same code points.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, p := range s.Sorted() {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Union returns the set of code points in s or other (or both).
func (s Set) Union(other Set) Set {
	out := s.Clone()
	for _, p := range other.Sorted() {
		out.tree.Add(p)
	}
	return out
}

// Intersect returns the set of code points in both s and other.
func (s Set) Intersect(other Set) Set {
	out := Set{tree: treeset.NewWith(codePointComparator)}
	small, big := s, other
	if other.Len() < s.Len() {
		small, big = other, s
	}
	for _, p := range small.Sorted() {
		if big.Contains(p) {
			out.tree.Add(p)
		}
	}
	return out
}

// Difference returns the code points in s that are not in other.
func (s Set) Difference(other Set) Set {
	out := Set{tree: treeset.NewWith(codePointComparator)}
	for _, p := range s.Sorted() {
		if !other.Contains(p) {
			out.tree.Add(p)
		}
	}
	return out
}

// IsSubsetOf reports whether every member of s is a member of other.
func (s Set) IsSubsetOf(other Set) bool {
	for _, p := range s.Sorted() {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// StrictSubsetOf reports whether s is a subset of other and other has at
// least one member s lacks.
func (s Set) StrictSubsetOf(other Set) bool {
	return s.IsSubsetOf(other) && s.Len() < other.Len()
}
