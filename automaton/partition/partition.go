package partition

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/stateforge/stateforge"
	"github.com/stateforge/stateforge/charset"
)

// Partition is the canonical, ordered list of disjoint character classes
// computed by Build. Insertion order is the stable cc_0, cc_1, …
// numbering; Classify never returns a class for a code point no member
// contains, and callers treat that as the synthetic cc_other sentinel.
type Partition struct {
	classes *arraylist.List // of charset.Set, insertion order = numbering
}

// Classes returns the partition members, in stable numbering order.
func (p *Partition) Classes() []charset.Set {
	out := make([]charset.Set, p.classes.Size())
	for i := 0; i < p.classes.Size(); i++ {
		v, _ := p.classes.Get(i)
		out[i] = v.(charset.Set)
	}
	return out
}

// Size returns the number of character classes (not counting cc_other).
func (p *Partition) Size() int {
	return p.classes.Size()
}

// Classify returns the index of the class containing r, and true. If no
// class contains r, it returns (-1, false) — the caller's cc_other case.
func (p *Partition) Classify(r stateforge.CodePoint) (int, bool) {
	for i := 0; i < p.classes.Size(); i++ {
		v, _ := p.classes.Get(i)
		if v.(charset.Set).Contains(r) {
			return i, true
		}
	}
	return -1, false
}

// Build computes the coarsest partition P such that every key in keys is a
// union of members of P, per the four-case incremental refinement
// algorithm of SPEC_FULL.md §4.3. Keys are folded in the given order;
// that order determines the resulting cc_i numbering.
func Build(keys []charset.Set) *Partition {
	classes := arraylist.New()
	for _, k := range keys {
		incorporate(classes, k)
	}
	return &Partition{classes: classes}
}

func classesSlice(classes *arraylist.List) []charset.Set {
	out := make([]charset.Set, classes.Size())
	for i := 0; i < classes.Size(); i++ {
		v, _ := classes.Get(i)
		out[i] = v.(charset.Set)
	}
	return out
}

func setClasses(classes *arraylist.List, sets []charset.Set) {
	classes.Clear()
	for _, s := range sets {
		classes.Add(s)
	}
}

// incorporate folds a single key into classes in place, implementing the
// four cases of the refinement algorithm.
func incorporate(classes *arraylist.List, k charset.Set) {
	if k.Empty() {
		return
	}
	cur := classesSlice(classes)

	// Case 1: K disjoint from every current member.
	touchesAny := false
	for _, c := range cur {
		if !c.Intersect(k).Empty() {
			touchesAny = true
			break
		}
	}
	if !touchesAny {
		tracer().Debugf("partition: new disjoint class %s", charset.Pretty(k))
		classes.Add(k.Clone())
		return
	}

	// Case 2: K equals an existing member.
	for _, c := range cur {
		if c.Equal(k) {
			return
		}
	}

	// Case 3: some existing class strictly contains K.
	for i, c := range cur {
		if k.StrictSubsetOf(c) {
			rest := c.Difference(k)
			tracer().Debugf("partition: splitting class %s on contained key %s", charset.Pretty(c), charset.Pretty(k))
			next := make([]charset.Set, 0, len(cur)+1)
			next = append(next, cur[:i]...)
			if !rest.Empty() {
				next = append(next, rest)
			}
			next = append(next, k.Clone())
			next = append(next, cur[i+1:]...)
			setClasses(classes, next)
			return
		}
	}

	// Case 4: K overlaps some classes and may exceed others.
	remaining := k.Clone()
	next := make([]charset.Set, 0, len(cur)+1)
	for _, c := range cur {
		if c.IsSubsetOf(remaining) {
			// C wholly inside K: stays intact, its portion leaves K.
			next = append(next, c)
			remaining = remaining.Difference(c)
			continue
		}
		overlap := c.Intersect(remaining)
		if overlap.Empty() {
			next = append(next, c)
			continue
		}
		rest := c.Difference(overlap)
		tracer().Debugf("partition: splitting class %s into %s / %s", charset.Pretty(c), charset.Pretty(rest), charset.Pretty(overlap))
		if !rest.Empty() {
			next = append(next, rest)
		}
		next = append(next, overlap)
		remaining = remaining.Difference(overlap)
	}
	if !remaining.Empty() {
		next = append(next, remaining)
	}
	setClasses(classes, next)
}
